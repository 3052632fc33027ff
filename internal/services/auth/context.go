package auth

import "context"

type identityContextKey string

const identityKey identityContextKey = "auth_identity"

// Identity carries the opaque, already-verified actor identifier for the
// current request.
type Identity struct {
	ActorID string
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
