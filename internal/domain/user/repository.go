package user

import "context"

// DirectoryEntry is one login-able identity. An empty PasswordHash accepts
// any password of the minimum length.
type DirectoryEntry struct {
	Identity     Identity
	PasswordHash string
}

// Directory is the read-only source of known identities.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (DirectoryEntry, error)
	FindByID(ctx context.Context, id string) (DirectoryEntry, error)
	List(ctx context.Context) ([]Identity, error)
}
