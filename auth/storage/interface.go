package storage

import (
	"context"

	"clubmanager/auth/users"
)

type AuthStorage interface {
	CreateUser(ctx context.Context, user users.User, passwordHash string) (users.User, error)
	GetUser(ctx context.Context, id int64) (users.User, error)
	// GetCredentials returns the user together with the stored password
	// hash. Missing users map to sql.ErrNoRows.
	GetCredentials(ctx context.Context, username string) (users.User, string, error)
}
