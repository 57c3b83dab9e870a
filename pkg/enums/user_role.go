package enums

import "fmt"

// UserRole represents a dashboard permissions role.
type UserRole string

const (
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleManager    UserRole = "MANAGER"
)

var validUserRoles = []UserRole{
	UserRoleSuperAdmin,
	UserRoleAdmin,
	UserRoleManager,
}

// AdminTier lists every role allowed to manage menu content and users.
func AdminTier() []UserRole {
	return []UserRole{UserRoleSuperAdmin, UserRoleAdmin, UserRoleManager}
}

// SuperAdminOnly lists the roles allowed on super-admin-restricted routes.
func SuperAdminOnly() []UserRole {
	return []UserRole{UserRoleSuperAdmin}
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

// ParseUserRole converts raw input into a UserRole.
func ParseUserRole(value string) (UserRole, error) {
	for _, candidate := range validUserRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user role %q", value)
}
