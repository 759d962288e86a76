package snapshot

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hitforum/forum-system/internal/core/domain"
)

// userRecord is the persisted form of a user. The password digest lives in
// the snapshot file but is stripped from domain.User's wire serialization.
type userRecord struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

type UserRepository struct {
	store *Store[string, userRecord]
}

func NewUserRepository(path string, log zerolog.Logger) *UserRepository {
	return &UserRepository{store: NewStore[string, userRecord](path, log)}
}

// Find retrieves a user by username, returning domain.ErrUserNotFound when absent.
func (r *UserRepository) Find(_ context.Context, username string) (*domain.User, error) {
	rec, ok, err := r.store.Get(username)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return toUser(rec), nil
}

// Create inserts the user only if the username is still unused. The existence
// check and the insert run inside one critical section, so concurrent creates
// for the same username cannot both succeed.
func (r *UserRepository) Create(_ context.Context, user *domain.User) (bool, error) {
	created := false
	err := r.store.Update(func(m map[string]userRecord) error {
		if _, exists := m[user.Username]; exists {
			return nil
		}
		m[user.Username] = toRecord(user)
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// Save replaces the stored record wholesale.
func (r *UserRepository) Save(_ context.Context, user *domain.User) error {
	return r.store.Put(user.Username, toRecord(user))
}

func (r *UserRepository) Delete(_ context.Context, username string) error {
	return r.store.Remove(username)
}

func (r *UserRepository) All(_ context.Context) ([]domain.User, error) {
	records, err := r.store.Values()
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(records))
	for _, rec := range records {
		users = append(users, *toUser(rec))
	}
	return users, nil
}

func toRecord(u *domain.User) userRecord {
	return userRecord{Username: u.Username, Password: u.PasswordDigest, Role: u.Role}
}

func toUser(rec userRecord) *domain.User {
	return &domain.User{Username: rec.Username, PasswordDigest: rec.Password, Role: rec.Role}
}
