package enums

import "fmt"

// UserRole represents an account's permission tier.
type UserRole string

const (
	UserRoleOwner    UserRole = "owner"
	UserRoleManager  UserRole = "manager"
	UserRoleEmployee UserRole = "employee"
)

var validUserRoles = []UserRole{
	UserRoleOwner,
	UserRoleManager,
	UserRoleEmployee,
}

// String implements fmt.Stringer.
func (r UserRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known UserRole.
func (r UserRole) IsValid() bool {
	for _, candidate := range validUserRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// IsStaff reports whether the role is scoped to an assigned store.
func (r UserRole) IsStaff() bool {
	return r == UserRoleManager || r == UserRoleEmployee
}

// ParseUserRole converts raw input into a UserRole.
func ParseUserRole(value string) (UserRole, error) {
	for _, candidate := range validUserRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user role %q", value)
}
