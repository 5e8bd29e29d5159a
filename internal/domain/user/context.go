package user

import "context"

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying the acting identity.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// FromContext returns the acting identity or ErrNotAuthenticated.
func FromContext(ctx context.Context) (Identity, error) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || identity.ID == "" {
		return Identity{}, ErrNotAuthenticated
	}
	return identity, nil
}
