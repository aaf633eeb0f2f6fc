// Package user holds the customer model and the in-memory registry keyed
// by national ID.
package user

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrDuplicateUser means the national ID is already registered.
	ErrDuplicateUser = errors.New("national id already registered")
	// ErrUserNotFound means no user is registered under the national ID.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidUser means a required registration field was blank.
	ErrInvalidUser = errors.New("invalid user data")
)

// Registry stores users in memory for the lifetime of one run. It is
// driven by a single sequential caller and is not safe for concurrent use.
type Registry struct {
	validate *validator.Validate
	users    map[string]*User
}

func NewRegistry() *Registry {
	return &Registry{
		validate: validator.New(),
		users:    make(map[string]*User),
	}
}

// Register validates and stores a new user. A failed registration leaves
// the registry unchanged.
func (r *Registry) Register(u User) (*User, error) {
	if err := r.validate.Struct(u); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) {
			return nil, fmt.Errorf("%w: %s is required", ErrInvalidUser, fields[0].Field())
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	if _, ok := r.users[u.NationalID]; ok {
		return nil, ErrDuplicateUser
	}
	stored := u
	r.users[u.NationalID] = &stored
	return &stored, nil
}

// Find returns the user registered under the given national ID.
func (r *Registry) Find(nationalID string) (*User, error) {
	u, ok := r.users[nationalID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Len reports how many users are registered.
func (r *Registry) Len() int {
	return len(r.users)
}
