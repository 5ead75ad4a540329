package domain

import (
	"errors"
	"strings"
)

// User is a user record of the user service. ID is assigned by the server and is empty until the
// record has been created; Name is supplied by the client on creation. The zero value is the
// placeholder state held by a call site before any call completes.
type User struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// NewUser builds a User for creation with a trimmed, non-blank name and the given server-assigned id.
//
// Parameters: id - identifier assigned by the store (e.g. uuid string); name - client-supplied name, leading/trailing spaces are trimmed.
//
// Returns: (User, nil) on success; (User{}, ClientError with CodeInvalidArgument) when name is blank after trimming.
//
// Called from handlers.UserServer.CreateUser.
func NewUser(id, name string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, NewInvalidArgumentError("name can not be blank", nil)
	}
	return User{ID: id, Name: name}, nil
}

// IsZero reports whether u is the placeholder value (no id and no name).
func (u User) IsZero() bool {
	return u.ID == "" && u.Name == ""
}

// ErrUserNotFound is returned by user stores when no user has the requested id.
var ErrUserNotFound = errors.New("user not found")
