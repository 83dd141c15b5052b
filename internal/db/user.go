package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is an admin backend account. Roles grant permissions via the
// role/permission pivot tables.
type User struct {
	gorm.Model
	Username    string `gorm:"uniqueIndex;not null"`
	Password    string `gorm:"not null"`
	DisplayName string
	Email       string
	Roles       []Role `gorm:"many2many:user_roles;"`
}

// EnsureUser creates a bcrypt-hashed account for the given credentials when no
// account with that username exists. Blank credentials are ignored.
func EnsureUser(gdb *gorm.DB, username, password, displayName string) (*User, error) {
	trimmedUser := strings.TrimSpace(username)
	trimmedPassword := strings.TrimSpace(password)
	if trimmedUser == "" || trimmedPassword == "" {
		return nil, nil
	}

	var existing User
	err := gdb.Where("username = ?", trimmedUser).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := User{
		Username:    trimmedUser,
		Password:    string(hashed),
		DisplayName: strings.TrimSpace(displayName),
	}
	if err := gdb.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
