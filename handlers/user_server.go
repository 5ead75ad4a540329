// Package handlers contains the gRPC and HTTP handlers of the development user service.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"myuserapp/adapters/userpb"
	"myuserapp/domain"
	"myuserapp/helpers"
	"myuserapp/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// UserServer implements api.v1.UserService on top of a UserStore. Request and response messages are dynamic
// messages of userpb.File, so the server speaks both the binary and the json content-subtype.
type UserServer struct {
	store  interfaces.UserStore
	newID  func() string
	logger log.Logger
}

// NewUserServer creates a UserServer. Panics on nil store, newID or logger.
//
// Parameters: store - user storage (memory or Redis); newID - id generator (uuid.NewString in production); logger - logger.
//
// Returns: *UserServer.
//
// Called from cmd/userserver and tests.
func NewUserServer(store interfaces.UserStore, newID func() string, logger log.Logger) *UserServer {
	return &UserServer{
		store:  helpers.NilPanic(store, "handlers.user_server.go: store is required"),
		newID:  helpers.NilPanic(newID, "handlers.user_server.go: newID is required"),
		logger: log.With(helpers.NilPanic(logger, "handlers.user_server.go: logger is required"), "component", "user_server"),
	}
}

// CreateUser assigns a new id to the requested name, stores the user and returns it.
//
// Returns: (CreateUserResponse with user, nil); (nil, ClientError CodeInvalidArgument) on a blank name; (nil, error) when the store fails.
func (s *UserServer) CreateUser(ctx context.Context, req protoreflect.Message) (*dynamicpb.Message, error) {
	u, err := domain.NewUser(s.newID(), userpb.RequestName(req))
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("createUser failed to save user, err: %w", err)
	}
	level.Debug(s.logger).Log("msg", "user created", "user_id", u.ID)
	return userpb.NewCreateUserResponse(&u), nil
}

// GetUser returns the user with the requested id. An empty id selects the first stored user; when the store is
// empty the response carries no user.
//
// Returns: (GetUserResponse, nil); (nil, ClientError CodeInvalidArgument) when id is not a UUID; (nil, domain.ErrUserNotFound) for an unknown id; (nil, error) when the store fails.
func (s *UserServer) GetUser(ctx context.Context, req protoreflect.Message) (*dynamicpb.Message, error) {
	id := userpb.RequestID(req)
	if id == "" {
		u, ok, err := s.store.First(ctx)
		if err != nil {
			return nil, fmt.Errorf("getUser failed to read first user, err: %w", err)
		}
		if !ok {
			return userpb.NewGetUserResponse(nil), nil
		}
		return userpb.NewGetUserResponse(&u), nil
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.NewInvalidArgumentError("id must be a UUID, got "+strconv.Quote(id), err)
	}
	id = parsed.String()
	u, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("getUser failed to read user %s, err: %w", id, err)
	}
	return userpb.NewGetUserResponse(&u), nil
}
