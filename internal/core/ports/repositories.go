package ports

import (
	"context"

	"github.com/hitforum/forum-system/internal/core/domain"
)

// UserRepository persists user accounts keyed by username.
type UserRepository interface {
	// Find returns domain.ErrUserNotFound when the username is unknown.
	Find(ctx context.Context, username string) (*domain.User, error)
	// Create inserts the user only when the username is unused and reports
	// whether the insert happened. Check and insert are atomic.
	Create(ctx context.Context, user *domain.User) (bool, error)
	// Save upserts the record wholesale.
	Save(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, username string) error
	All(ctx context.Context) ([]domain.User, error)
}

// PostRepository persists posts keyed by id and allocates new ids.
type PostRepository interface {
	NextID() int64
	// Find returns domain.ErrPostNotFound when the id is unknown.
	Find(ctx context.Context, id int64) (*domain.Post, error)
	Save(ctx context.Context, post *domain.Post) error
	All(ctx context.Context) ([]domain.Post, error)
	// DeleteWithComments removes the post and every comment referencing it
	// as one cascade, all-or-nothing relative to concurrent readers.
	// Returns the number of comments removed.
	DeleteWithComments(ctx context.Context, id int64) (int, error)
}

// CommentRepository persists comments keyed by id and allocates new ids.
type CommentRepository interface {
	NextID() int64
	// Find returns domain.ErrCommentNotFound when the id is unknown.
	Find(ctx context.Context, id int64) (*domain.Comment, error)
	Save(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id int64) error
	All(ctx context.Context) ([]domain.Comment, error)
	ByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
}
