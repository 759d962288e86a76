package ports

import (
	"context"

	"github.com/hitforum/forum-system/internal/core/domain"
)

// UserService manages accounts. Mutations report denial and absence alike as
// a plain false result, matching the externally observable protocol.
type UserService interface {
	Create(ctx context.Context, username, rawPassword string, role domain.Role) (bool, error)
	Edit(ctx context.Context, editorName, username, oldRawPassword, newRawPassword string, newRole domain.Role) (bool, error)
	Remove(ctx context.Context, removerName, username, rawPassword string) (bool, error)
	Authenticate(ctx context.Context, username, rawPassword string) (bool, error)
	// Get returns the record only when the credentials verify;
	// domain.ErrUserNotFound otherwise.
	Get(ctx context.Context, username, rawPassword string) (*domain.User, error)
}

type PostService interface {
	Create(ctx context.Context, title, userName, content string) (*domain.Post, error)
	Edit(ctx context.Context, id int64, title, userName, content string) (bool, error)
	Remove(ctx context.Context, id int64, userName string) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	GetAll(ctx context.Context) ([]domain.Post, error)
	Comments(ctx context.Context, postID int64) ([]domain.Comment, error)
	SearchTitles(ctx context.Context, pattern string) (*domain.SearchResult[domain.Post], error)
	SearchContents(ctx context.Context, pattern string) (*domain.SearchResult[domain.Post], error)
}

type CommentService interface {
	Create(ctx context.Context, postID int64, userName, content string) (*domain.Comment, error)
	Edit(ctx context.Context, id int64, userName, content string) (bool, error)
	Remove(ctx context.Context, id int64, userName string) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	GetAll(ctx context.Context) ([]domain.Comment, error)
	SearchContents(ctx context.Context, pattern string) (*domain.SearchResult[domain.Comment], error)
}
