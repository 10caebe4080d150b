package types

import (
	"context"
	"time"
)

// BaseModel is a base model for all domain models that need to be persisted
// in the document store.
type BaseModel struct {
	CreatedAt time.Time `firestore:"created_at" json:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at" json:"updated_at"`
	CreatedBy string    `firestore:"created_by" json:"created_by"`
	UpdatedBy string    `firestore:"updated_by" json:"updated_by"`
}

func GetDefaultBaseModel(ctx context.Context) BaseModel {
	now := time.Now().UTC()
	return BaseModel{
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: GetOperatorID(ctx),
		UpdatedBy: GetOperatorID(ctx),
	}
}
