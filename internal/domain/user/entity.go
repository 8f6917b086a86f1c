package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole = errors.New("invalid role")
	ErrEmptyName   = errors.New("user name must not be empty")
)

// User is read from the directory. This service never mutates it.
type User struct {
	id   uuid.UUID
	name string
	role Role
}

func NewUser(name string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if role == "" {
		return nil, ErrInvalidRole
	}
	return &User{
		id:   uuid.New(),
		name: name,
		role: role,
	}, nil
}

func ReconstructUser(id uuid.UUID, name string, role Role) *User {
	return &User{
		id:   id,
		name: name,
		role: role,
	}
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Role() Role    { return u.role }

func (u *User) CanReserve() bool {
	return u.role.CanReserve()
}
