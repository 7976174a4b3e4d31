package graphql

import (
	"context"

	entity "inventorypro.GO/model/entity"
)

// Context keys for resolver injection (avoids circular imports).
type contextKey string

const CtxKeyUser contextKey = "user"

// WithUser attaches the session user to the request context so mutation
// resolvers can check capabilities.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, CtxKeyUser, user)
}

// UserFromContext returns the session user, or nil for anonymous
// requests (the /graphql path skips the auth middleware).
func UserFromContext(ctx context.Context) *entity.User {
	if u, ok := ctx.Value(CtxKeyUser).(*entity.User); ok {
		return u
	}
	return nil
}
