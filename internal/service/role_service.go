package service

import (
	"errors"
	"strings"

	"github.com/jiftek/website/internal/db"
	"gorm.io/gorm"
)

var (
	ErrRoleNotFound = errors.New("role not found")
	ErrUserNotFound = errors.New("user not found")
	ErrRoleName     = errors.New("role name is required")
)

// RoleService manages roles, permissions and their assignment to users.
type RoleService struct {
	db *gorm.DB
}

// NewRoleService creates a RoleService instance.
func NewRoleService(gdb *gorm.DB) *RoleService {
	return &RoleService{db: gdb}
}

// EnsurePermission upserts a permission by its unique name.
func (s *RoleService) EnsurePermission(name string) (*db.Permission, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrRoleName
	}

	var perm db.Permission
	err := s.db.Where("name = ?", name).First(&perm).Error
	if err == nil {
		return &perm, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	perm = db.Permission{Name: name}
	if err := s.db.Create(&perm).Error; err != nil {
		return nil, err
	}
	return &perm, nil
}

// EnsureRole upserts a role by its unique name, updating the description when
// one is supplied.
func (s *RoleService) EnsureRole(name, description string) (*db.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrRoleName
	}

	var role db.Role
	err := s.db.Where("name = ?", name).First(&role).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		role = db.Role{Name: name, Description: strings.TrimSpace(description)}
		if err := s.db.Create(&role).Error; err != nil {
			return nil, err
		}
		return &role, nil
	}

	if desc := strings.TrimSpace(description); desc != "" && desc != role.Description {
		role.Description = desc
		if err := s.db.Save(&role).Error; err != nil {
			return nil, err
		}
	}
	return &role, nil
}

// SyncPermissions replaces the role's permission set with exactly the named
// permissions. Missing permissions are created; the previous set is not
// merged in.
func (s *RoleService) SyncPermissions(roleName string, permissionNames []string) error {
	role, err := s.getRole(roleName)
	if err != nil {
		return err
	}

	perms := make([]db.Permission, 0, len(permissionNames))
	for _, name := range permissionNames {
		perm, err := s.EnsurePermission(name)
		if err != nil {
			return err
		}
		perms = append(perms, *perm)
	}

	return s.db.Model(role).Association("Permissions").Replace(perms)
}

// AssignRoles replaces the user's role set with the named roles.
func (s *RoleService) AssignRoles(userID uint, roleNames []string) error {
	var user db.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	roles := make([]db.Role, 0, len(roleNames))
	for _, name := range roleNames {
		role, err := s.getRole(name)
		if err != nil {
			return err
		}
		roles = append(roles, *role)
	}

	return s.db.Model(&user).Association("Roles").Replace(roles)
}

// RolePermissions returns the permission names currently attached to a role.
func (s *RoleService) RolePermissions(roleName string) ([]string, error) {
	role, err := s.getRole(roleName)
	if err != nil {
		return nil, err
	}

	var perms []db.Permission
	if err := s.db.Model(role).Association("Permissions").Find(&perms); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(perms))
	for _, perm := range perms {
		names = append(names, perm.Name)
	}
	return names, nil
}

// UserHasPermission reports whether any of the user's roles carries the named
// permission.
func (s *RoleService) UserHasPermission(userID uint, permission string) (bool, error) {
	var count int64
	err := s.db.Table("permissions").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Joins("JOIN user_roles ON user_roles.role_id = role_permissions.role_id").
		Where("user_roles.user_id = ? AND permissions.name = ?", userID, permission).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UserRoles returns the role names attached to a user.
func (s *RoleService) UserRoles(userID uint) ([]string, error) {
	var user db.User
	if err := s.db.Preload("Roles").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	names := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		names = append(names, role.Name)
	}
	return names, nil
}

func (s *RoleService) getRole(name string) (*db.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrRoleName
	}

	var role db.Role
	if err := s.db.Where("name = ?", name).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}
