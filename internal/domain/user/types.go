package user

import "strings"

type Role string

const (
	RoleDoctor     Role = "doctor"
	RoleResearcher Role = "researcher"
)

func (r Role) String() string {
	return string(r)
}

// CanReserve reports whether the role is allowed to book laboratories and devices.
// The directory may hold other roles; they are valid users but never admitted.
func (r Role) CanReserve() bool {
	switch r {
	case RoleDoctor, RoleResearcher:
		return true
	default:
		return false
	}
}

func (r Role) IsDoctor() bool {
	return r == RoleDoctor
}

func NewRole(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", ErrInvalidRole
	}
	return Role(s), nil
}
