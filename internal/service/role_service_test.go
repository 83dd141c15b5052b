package service

import (
	"sort"
	"testing"

	"github.com/jiftek/website/internal/db"
)

func TestEnsureRoleIsIdempotent(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewRoleService(gdb)
	first, err := svc.EnsureRole(db.RoleEditor, "Edit site content")
	if err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	second, err := svc.EnsureRole(db.RoleEditor, "")
	if err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same role row, got ids %d and %d", first.ID, second.ID)
	}

	var count int64
	gdb.Model(&db.Role{}).Where("name = ?", db.RoleEditor).Count(&count)
	if count != 1 {
		t.Fatalf("expected one editor role, found %d", count)
	}
}

func TestSyncPermissionsReplacesPriorSet(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewRoleService(gdb)
	if _, err := svc.EnsureRole(db.RoleEditor, ""); err != nil {
		t.Fatalf("ensure role: %v", err)
	}

	if err := svc.SyncPermissions(db.RoleEditor, []string{"perm.a", "perm.b"}); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if err := svc.SyncPermissions(db.RoleEditor, []string{"perm.c"}); err != nil {
		t.Fatalf("second sync: %v", err)
	}

	perms, err := svc.RolePermissions(db.RoleEditor)
	if err != nil {
		t.Fatalf("role permissions: %v", err)
	}
	sort.Strings(perms)
	if len(perms) != 1 || perms[0] != "perm.c" {
		t.Fatalf("expected exactly {perm.c}, got %v", perms)
	}
}

func TestUserHasPermissionThroughRole(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewRoleService(gdb)
	if _, err := svc.EnsureRole(db.RoleEditor, ""); err != nil {
		t.Fatalf("ensure role: %v", err)
	}
	if err := svc.SyncPermissions(db.RoleEditor, []string{db.PermContentManage}); err != nil {
		t.Fatalf("sync permissions: %v", err)
	}

	user, err := db.EnsureUser(gdb, "editor", "secret123", "Editor")
	if err != nil {
		t.Fatalf("ensure user: %v", err)
	}
	if err := svc.AssignRoles(user.ID, []string{db.RoleEditor}); err != nil {
		t.Fatalf("assign roles: %v", err)
	}

	allowed, err := svc.UserHasPermission(user.ID, db.PermContentManage)
	if err != nil {
		t.Fatalf("check permission: %v", err)
	}
	if !allowed {
		t.Fatal("expected editor to have content.manage")
	}

	denied, err := svc.UserHasPermission(user.ID, db.PermUserManage)
	if err != nil {
		t.Fatalf("check denied permission: %v", err)
	}
	if denied {
		t.Fatal("expected editor to lack users.manage")
	}
}

func TestAssignRolesReplacesPriorRoles(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewRoleService(gdb)
	if _, err := svc.EnsureRole(db.RoleAdmin, ""); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}
	if _, err := svc.EnsureRole(db.RoleEditor, ""); err != nil {
		t.Fatalf("ensure editor: %v", err)
	}

	user, err := db.EnsureUser(gdb, "sam", "secret123", "Sam")
	if err != nil {
		t.Fatalf("ensure user: %v", err)
	}

	if err := svc.AssignRoles(user.ID, []string{db.RoleAdmin}); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	if err := svc.AssignRoles(user.ID, []string{db.RoleEditor}); err != nil {
		t.Fatalf("second assign: %v", err)
	}

	roles, err := svc.UserRoles(user.ID)
	if err != nil {
		t.Fatalf("user roles: %v", err)
	}
	if len(roles) != 1 || roles[0] != db.RoleEditor {
		t.Fatalf("expected exactly {editor}, got %v", roles)
	}
}
