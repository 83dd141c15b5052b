package db

import "gorm.io/gorm"

// Role names seeded by default.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// Permission names referenced by the admin routes.
const (
	PermContentManage = "content.manage"
	PermPageManage    = "pages.manage"
	PermUserManage    = "users.manage"
)

// Role groups permissions and is attached to users via user_roles.
type Role struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null"`
	Description string
	Permissions []Permission `gorm:"many2many:role_permissions;"`
}

// Permission is a named capability checked by the admin middleware.
type Permission struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null"`
}
