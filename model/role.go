package model

import "gorm.io/datatypes"

// Permission names a single action a role is allowed to perform.
type Permission string

const (
	PermissionManageCourses Permission = "manage_courses"
	PermissionManageLibrary Permission = "manage_library"
	PermissionManageUsers   Permission = "manage_users"
)

// Role groups users and carries their permission set. Permissions are stored
// as a JSON array column so new permissions do not require a migration.
type Role struct {
	ID          uint                              `gorm:"primaryKey" json:"id"`
	Name        string                            `gorm:"not null" json:"name"`
	Permissions datatypes.JSONSlice[Permission] `json:"permissions"`

	Users []User `gorm:"foreignKey:RoleID" json:"-"`
}

// HasPermission reports whether the role carries the given permission.
func (r *Role) HasPermission(p Permission) bool {
	for _, candidate := range r.Permissions {
		if candidate == p {
			return true
		}
	}
	return false
}
