package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID  ContextKey = "ctx_request_id"
	CtxOperatorID ContextKey = "ctx_operator_id"

	// DefaultOperatorID is used when no authenticated operator is attached
	// to the request. The admin app is single-operator today.
	DefaultOperatorID = "operator"

	// HeaderRequestID is the request id header echoed on every response
	HeaderRequestID = "X-Request-ID"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

func GetOperatorID(ctx context.Context) string {
	if operatorID, ok := ctx.Value(CtxOperatorID).(string); ok {
		return operatorID
	}
	return DefaultOperatorID
}

// SetOperatorID sets the operator ID in the context
func SetOperatorID(ctx context.Context, operatorID string) context.Context {
	return context.WithValue(ctx, CtxOperatorID, operatorID)
}

// SetRequestID sets the request ID in the context
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxRequestID, requestID)
}
