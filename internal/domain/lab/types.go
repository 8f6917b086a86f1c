package lab

import (
	"errors"

	"lab-reservation/internal/domain/user"
)

var (
	ErrInvalidCategory = errors.New("invalid lab category")
	ErrInvalidStatus   = errors.New("invalid lab status")
)

// Category is the usage category shared by laboratories and experiments.
type Category string

const (
	CategoryAcademic Category = "academic"
	CategoryResearch Category = "research"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryAcademic, CategoryResearch:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// roleCategories is the only place that ties requester roles to lab/experiment categories.
var roleCategories = map[user.Role]Category{
	user.RoleDoctor:     CategoryAcademic,
	user.RoleResearcher: CategoryResearch,
}

func CategoryForRole(r user.Role) (Category, bool) {
	c, ok := roleCategories[r]
	return c, ok
}

// Permits reports whether a requester with role r may use a resource of category c.
func Permits(c Category, r user.Role) bool {
	want, ok := CategoryForRole(r)
	return ok && want == c
}

type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusUnavailable:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
