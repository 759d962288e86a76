package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hitforum/forum-system/internal/core/domain"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	users, _, _ := testRepos(t, t.TempDir())
	return NewUserService(users, zerolog.Nop())
}

func mustCreate(t *testing.T, svc *UserService, username, password string, role domain.Role) {
	t.Helper()
	created, err := svc.Create(context.Background(), username, password, role)
	if err != nil || !created {
		t.Fatalf("create %s failed: created=%v err=%v", username, created, err)
	}
}

func TestUserService_CreateIsUniquePerUsername(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	mustCreate(t, svc, "alice", "secret", domain.RoleUser)

	created, err := svc.Create(ctx, "alice", "other", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("second create errored: %v", err)
	}
	if created {
		t.Fatalf("second create for the same username must fail")
	}

	// the original record is untouched: old password still works, role unchanged
	user, err := svc.Get(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("original credentials no longer verify: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("role changed by failed create: %s", user.Role)
	}
	if ok, _ := svc.Authenticate(ctx, "alice", "other"); ok {
		t.Fatalf("password of the failed create must not verify")
	}
}

func TestUserService_AuthenticateRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	mustCreate(t, svc, "u", "p", domain.RoleUser)

	if ok, err := svc.Authenticate(ctx, "u", "p"); err != nil || !ok {
		t.Fatalf("expected authentication to succeed: ok=%v err=%v", ok, err)
	}
	if ok, err := svc.Authenticate(ctx, "u", "wrong"); err != nil || ok {
		t.Fatalf("expected wrong password to fail: ok=%v err=%v", ok, err)
	}
	if ok, err := svc.Authenticate(ctx, "ghost", "p"); err != nil || ok {
		t.Fatalf("expected unknown user to fail: ok=%v err=%v", ok, err)
	}

	if user, err := svc.Get(ctx, "u", "p"); err != nil || user.Username != "u" {
		t.Fatalf("get with correct password failed: user=%+v err=%v", user, err)
	}
	if _, err := svc.Get(ctx, "u", "wrong"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("get with wrong password must report absence, got %v", err)
	}
}

func TestUserService_EditAuthorization(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	mustCreate(t, svc, "admin", "adminpw", domain.RoleAdmin)
	mustCreate(t, svc, "bob", "bobpw", domain.RoleUser)
	mustCreate(t, svc, "eve", "evepw", domain.RoleUser)

	// self edit with correct old password
	ok, err := svc.Edit(ctx, "bob", "bob", "bobpw", "newpw", domain.RoleUser)
	if err != nil || !ok {
		t.Fatalf("self edit failed: ok=%v err=%v", ok, err)
	}
	if ok, _ := svc.Authenticate(ctx, "bob", "newpw"); !ok {
		t.Fatalf("new password does not verify after edit")
	}
	if ok, _ := svc.Authenticate(ctx, "bob", "bobpw"); ok {
		t.Fatalf("old password still verifies after edit")
	}

	// self edit with wrong old password
	if ok, _ := svc.Edit(ctx, "bob", "bob", "wrong", "x", domain.RoleUser); ok {
		t.Fatalf("self edit with wrong password must be denied")
	}

	// another plain user, even with the target's password
	if ok, _ := svc.Edit(ctx, "eve", "bob", "newpw", "stolen", domain.RoleUser); ok {
		t.Fatalf("foreign edit must be denied")
	}

	// admin override: old password irrelevant, role can change
	ok, err = svc.Edit(ctx, "admin", "bob", "", "adminset", domain.RoleModerator)
	if err != nil || !ok {
		t.Fatalf("admin edit failed: ok=%v err=%v", ok, err)
	}
	user, err := svc.Get(ctx, "bob", "adminset")
	if err != nil {
		t.Fatalf("admin-set password does not verify: %v", err)
	}
	if user.Role != domain.RoleModerator {
		t.Fatalf("role not updated by admin edit: %s", user.Role)
	}

	// absent target
	if ok, _ := svc.Edit(ctx, "admin", "ghost", "", "x", domain.RoleUser); ok {
		t.Fatalf("edit of absent user must return false")
	}
}

func TestUserService_RemoveAuthorization(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	mustCreate(t, svc, "admin", "adminpw", domain.RoleAdmin)
	mustCreate(t, svc, "mod", "modpw", domain.RoleModerator)
	mustCreate(t, svc, "bob", "bobpw", domain.RoleUser)
	mustCreate(t, svc, "carol", "carolpw", domain.RoleUser)

	// moderators hold no power over accounts
	if ok, _ := svc.Remove(ctx, "mod", "bob", "bobpw"); ok {
		t.Fatalf("moderator must not remove another account")
	}

	// self removal requires the correct password
	if ok, _ := svc.Remove(ctx, "bob", "bob", "wrong"); ok {
		t.Fatalf("self removal with wrong password must be denied")
	}
	if ok, err := svc.Remove(ctx, "bob", "bob", "bobpw"); err != nil || !ok {
		t.Fatalf("self removal failed: ok=%v err=%v", ok, err)
	}
	if ok, _ := svc.Authenticate(ctx, "bob", "bobpw"); ok {
		t.Fatalf("removed account still authenticates")
	}

	// admin removes anyone without their password
	if ok, err := svc.Remove(ctx, "admin", "carol", ""); err != nil || !ok {
		t.Fatalf("admin removal failed: ok=%v err=%v", ok, err)
	}

	// absent target
	if ok, _ := svc.Remove(ctx, "admin", "carol", ""); ok {
		t.Fatalf("removing an absent user must return false")
	}
}
