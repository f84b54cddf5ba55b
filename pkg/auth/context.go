package auth

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

// WithIdentity は context に認証済みユーザーをセットする
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// CurrentUser returns the authenticated caller, or false when the request is anonymous.
func CurrentUser(ctx context.Context) (Identity, bool) {
	v, ok := ctx.Value(identityKey).(Identity)
	return v, ok
}
