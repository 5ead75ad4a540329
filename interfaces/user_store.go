package interfaces

import (
	"context"

	"myuserapp/domain"
)

// UserStore persists users for the development user-service server. Implementations are
// adapters/memory (default) and adapters/redis.
//
//go:generate moq -stub -out mock/user_store.go -pkg mock . UserStore
type UserStore interface {
	// Save stores u under u.ID, replacing any previous record with that id.
	Save(ctx context.Context, u domain.User) error

	// Get returns the user with the given id.
	// Returns: (User, nil) on success; (User{}, ErrUserNotFound) when no user has that id; (User{}, error) on storage failure.
	Get(ctx context.Context, id string) (domain.User, error)

	// First returns the earliest stored user.
	// Returns: (User, true, nil) when the store is non-empty; (User{}, false, nil) when empty; (User{}, false, error) on storage failure.
	First(ctx context.Context) (domain.User, bool, error)
}
