package snapshot

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hitforum/forum-system/internal/core/domain"
)

type CommentRepository struct {
	store *Store[int64, domain.Comment]
	seq   *Sequence
}

// NewCommentRepository opens the comment snapshot and seeds the id sequence
// from the highest persisted id.
func NewCommentRepository(path string, log zerolog.Logger) (*CommentRepository, error) {
	store := NewStore[int64, domain.Comment](path, log)
	comments, err := store.Values()
	if err != nil {
		return nil, err
	}
	var maxID int64
	for _, c := range comments {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return &CommentRepository{store: store, seq: NewSequence(maxID + 1)}, nil
}

// NextID allocates the next comment id.
func (r *CommentRepository) NextID() int64 {
	return r.seq.Next()
}

func (r *CommentRepository) Find(_ context.Context, id int64) (*domain.Comment, error) {
	c, ok, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	return &c, nil
}

func (r *CommentRepository) Save(_ context.Context, comment *domain.Comment) error {
	return r.store.Put(comment.ID, *comment)
}

func (r *CommentRepository) Delete(_ context.Context, id int64) error {
	return r.store.Remove(id)
}

func (r *CommentRepository) All(_ context.Context) ([]domain.Comment, error) {
	return r.store.Values()
}

// ByPost returns every comment whose postId matches. Full scan; the store
// holds no secondary index.
func (r *CommentRepository) ByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Comment, 0)
	for _, c := range all {
		if c.PostID == postID {
			matched = append(matched, c)
		}
	}
	return matched, nil
}
