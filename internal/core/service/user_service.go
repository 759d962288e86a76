package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hitforum/forum-system/internal/core/authz"
	"github.com/hitforum/forum-system/internal/core/domain"
	"github.com/hitforum/forum-system/internal/core/ports"
)

// UserService implements account management over the user store.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create registers a new account. Returns false when the username is taken;
// the existing record stays untouched.
func (s *UserService) Create(ctx context.Context, username, rawPassword string, role domain.Role) (bool, error) {
	digest, err := hashPassword(rawPassword)
	if err != nil {
		return false, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:       username,
		PasswordDigest: digest,
		Role:           role,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to create user")
		return false, err
	}
	if created {
		s.logger.Info().Str("username", username).Str("role", string(role)).Msg("user created")
	}
	return created, nil
}

// Edit replaces the target account with a freshly hashed password and the new
// role. Admins may edit anyone; otherwise the editor must be the target and
// present the current password. Absent target and denied edit both yield false.
func (s *UserService) Edit(ctx context.Context, editorName, username, oldRawPassword, newRawPassword string, newRole domain.Role) (bool, error) {
	target, err := s.users.Find(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	editorRole, editorIsTarget := s.requester(ctx, editorName, username)
	oldOK := verifyPassword(oldRawPassword, target.PasswordDigest)
	if !authz.CanEditUser(editorRole, editorIsTarget, oldOK) {
		return false, nil
	}

	digest, err := hashPassword(newRawPassword)
	if err != nil {
		return false, err
	}
	if err := s.users.Save(ctx, &domain.User{Username: username, PasswordDigest: digest, Role: newRole}); err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to save edited user")
		return false, err
	}
	s.logger.Info().Str("username", username).Str("editor", editorName).Msg("user edited")
	return true, nil
}

// Remove deletes the target account under the same authorization rules as Edit.
func (s *UserService) Remove(ctx context.Context, removerName, username, rawPassword string) (bool, error) {
	target, err := s.users.Find(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	removerRole, removerIsTarget := s.requester(ctx, removerName, username)
	passwordOK := verifyPassword(rawPassword, target.PasswordDigest)
	if !authz.CanRemoveUser(removerRole, removerIsTarget, passwordOK) {
		return false, nil
	}

	if err := s.users.Delete(ctx, username); err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to delete user")
		return false, err
	}
	s.logger.Info().Str("username", username).Str("remover", removerName).Msg("user removed")
	return true, nil
}

// Authenticate verifies credentials. Unknown usernames fail silently.
func (s *UserService) Authenticate(ctx context.Context, username, rawPassword string) (bool, error) {
	user, err := s.users.Find(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return verifyPassword(rawPassword, user.PasswordDigest), nil
}

// Get fetches the account only when the credentials verify, so a record is
// never exposed without the correct password.
func (s *UserService) Get(ctx context.Context, username, rawPassword string) (*domain.User, error) {
	ok, err := s.Authenticate(ctx, username, rawPassword)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.users.Find(ctx, username)
}

// requester resolves the acting user's role and whether they are the target.
// An unknown requester has no role and is never the target.
func (s *UserService) requester(ctx context.Context, actorName, targetName string) (domain.Role, bool) {
	actor, err := s.users.Find(ctx, actorName)
	if err != nil {
		return "", false
	}
	return actor.Role, actor.Username == targetName
}

func hashPassword(raw string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func verifyPassword(raw, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(raw)) == nil
}
