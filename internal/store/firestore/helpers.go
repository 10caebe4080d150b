package firestore

import (
	"cloud.google.com/go/firestore"
)

func direction(order string) firestore.Direction {
	if order == "asc" {
		return firestore.Asc
	}
	return firestore.Desc
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
