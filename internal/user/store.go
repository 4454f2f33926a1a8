package user

import "context"

// Store is the user-store collaborator consumed by the auth gateway.
type Store interface {
	// FindByUsername returns the user with the exact username, or (nil, nil)
	// if no such user exists. Lookup is case-sensitive.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByID returns the user with the given id, or (nil, nil).
	FindByID(ctx context.Context, id uint) (*User, error)

	// Create persists a new user record and assigns it a unique id.
	Create(ctx context.Context, username, passwordHash, role string) (*User, error)
}
