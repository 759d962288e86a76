package snapshot

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hitforum/forum-system/internal/core/domain"
)

type PostRepository struct {
	store    *Store[int64, domain.Post]
	comments *CommentRepository
	seq      *Sequence
	log      zerolog.Logger
}

// NewPostRepository opens the post snapshot and seeds the id sequence from
// the highest persisted id. The comment repository is needed for the removal
// cascade, which spans both stores.
func NewPostRepository(path string, comments *CommentRepository, log zerolog.Logger) (*PostRepository, error) {
	store := NewStore[int64, domain.Post](path, log)
	posts, err := store.Values()
	if err != nil {
		return nil, err
	}
	var maxID int64
	for _, p := range posts {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return &PostRepository{
		store:    store,
		comments: comments,
		seq:      NewSequence(maxID + 1),
		log:      log,
	}, nil
}

// NextID allocates the next post id.
func (r *PostRepository) NextID() int64 {
	return r.seq.Next()
}

func (r *PostRepository) Find(_ context.Context, id int64) (*domain.Post, error) {
	p, ok, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return &p, nil
}

func (r *PostRepository) Save(_ context.Context, post *domain.Post) error {
	return r.store.Put(post.ID, *post)
}

func (r *PostRepository) All(_ context.Context) ([]domain.Post, error) {
	return r.store.Values()
}

// DeleteWithComments removes a post together with every comment referencing
// it, inside one critical section spanning both stores so concurrent readers
// observe the cascade all-or-nothing. Lock order is fixed globally: comment
// store first, then post store. Returns the number of comments removed, or
// domain.ErrPostNotFound when the post is absent.
//
// The two snapshot files are still written one after the other; a crash
// between the writes can leave the comments removed with the post intact.
// That durability gap is logged, never silently ignored.
func (r *PostRepository) DeleteWithComments(_ context.Context, id int64) (int, error) {
	cs := r.comments.store
	cs.mu.Lock()
	defer cs.mu.Unlock()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	posts, err := r.store.load()
	if err != nil {
		return 0, err
	}
	if _, ok := posts[id]; !ok {
		return 0, domain.ErrPostNotFound
	}

	comments, err := cs.load()
	if err != nil {
		return 0, err
	}
	removed := 0
	for cid, c := range comments {
		if c.PostID == id {
			delete(comments, cid)
			removed++
		}
	}
	if err := cs.save(comments); err != nil {
		return 0, err
	}

	delete(posts, id)
	if err := r.store.save(posts); err != nil {
		r.log.Error().
			Int64("post_id", id).
			Int("comments_removed", removed).
			Err(err).
			Msg("cascade partially applied: comments removed but post delete failed")
		return removed, err
	}
	return removed, nil
}
