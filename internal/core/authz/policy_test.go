package authz

import (
	"testing"

	"github.com/hitforum/forum-system/internal/core/domain"
)

func TestCanEditOwned(t *testing.T) {
	if !CanEditOwned(true) {
		t.Fatalf("owner must be allowed to edit")
	}
	if CanEditOwned(false) {
		t.Fatalf("non-owner must not be allowed to edit")
	}
}

func TestCanRemoveOwned(t *testing.T) {
	cases := []struct {
		name  string
		role  domain.Role
		owner bool
		want  bool
	}{
		{"owner plain user", domain.RoleUser, true, true},
		{"non-owner plain user", domain.RoleUser, false, false},
		{"non-owner admin", domain.RoleAdmin, false, true},
		{"non-owner moderator", domain.RoleModerator, false, true},
		{"owner admin", domain.RoleAdmin, true, true},
		{"non-owner unknown role", domain.Role(""), false, false},
	}
	for _, tc := range cases {
		if got := CanRemoveOwned(tc.role, tc.owner); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanEditUser(t *testing.T) {
	cases := []struct {
		name     string
		role     domain.Role
		isTarget bool
		oldOK    bool
		want     bool
	}{
		{"admin overrides password", domain.RoleAdmin, false, false, true},
		{"self with correct password", domain.RoleUser, true, true, true},
		{"self with wrong password", domain.RoleUser, true, false, false},
		{"other with correct password", domain.RoleUser, false, true, false},
		{"moderator is not admin", domain.RoleModerator, false, true, false},
	}
	for _, tc := range cases {
		if got := CanEditUser(tc.role, tc.isTarget, tc.oldOK); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanRemoveUser(t *testing.T) {
	if !CanRemoveUser(domain.RoleAdmin, false, false) {
		t.Fatalf("admin must be allowed to remove any user")
	}
	if !CanRemoveUser(domain.RoleUser, true, true) {
		t.Fatalf("self removal with verified password must be allowed")
	}
	if CanRemoveUser(domain.RoleUser, true, false) {
		t.Fatalf("self removal without verified password must be denied")
	}
	if CanRemoveUser(domain.RoleModerator, false, true) {
		t.Fatalf("moderator must not remove other accounts")
	}
}
