package interfaces

import (
	"context"

	"myuserapp/domain"
)

// UserService is the typed client contract of api.v1.UserService as seen by call sites. Each method
// reports the wire truth: the returned user is nil when the response carried no user entity, and
// interpreting that absence is left to the call site.
//
// Implemented by service.UserServiceClient. Called from service.UserCallSite.
//
//go:generate moq -stub -out mock/user_service.go -pkg mock . UserService
type UserService interface {
	// CreateUser sends a creation request carrying only name.
	// Returns: (*User, nil) when the response has a user; (nil, nil) when it has none; (nil, error) on transport failure.
	CreateUser(ctx context.Context, name string) (*domain.User, error)

	// GetUser sends a lookup request carrying id (empty allowed).
	// Returns: (*User, nil) when the response has a user; (nil, nil) when it has none; (nil, error) on transport failure.
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
