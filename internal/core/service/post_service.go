package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/hitforum/forum-system/internal/core/authz"
	"github.com/hitforum/forum-system/internal/core/domain"
	"github.com/hitforum/forum-system/internal/core/ports"
	"github.com/hitforum/forum-system/internal/pkg/search"
)

// PostService implements post management, the comment cascade on removal and
// substring search over titles and contents.
type PostService struct {
	posts    ports.PostRepository
	comments ports.CommentRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewPostService(posts ports.PostRepository, comments ports.CommentRepository, users ports.UserRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, comments: comments, users: users, logger: logger}
}

// Create stores a new post with a freshly allocated id and the current time.
func (s *PostService) Create(ctx context.Context, title, userName, content string) (*domain.Post, error) {
	post := &domain.Post{
		ID:        s.posts.NextID(),
		Title:     title,
		UserName:  userName,
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.posts.Save(ctx, post); err != nil {
		s.logger.Error().Err(err).Int64("post_id", post.ID).Msg("failed to create post")
		return nil, err
	}
	s.logger.Info().Int64("post_id", post.ID).Str("author", userName).Msg("post created")
	return post, nil
}

// Edit overwrites title and content and marks the post edited. Only the
// original author may edit, regardless of role. Absent post and foreign
// author both yield false.
func (s *PostService) Edit(ctx context.Context, id int64, title, userName, content string) (bool, error) {
	post, err := s.posts.Find(ctx, id)
	if errors.Is(err, domain.ErrPostNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !authz.CanEditOwned(post.UserName == userName) {
		return false, nil
	}

	post.Title = title
	post.Content = content
	post.Edited = true
	if err := s.posts.Save(ctx, post); err != nil {
		s.logger.Error().Err(err).Int64("post_id", id).Msg("failed to save edited post")
		return false, err
	}
	return true, nil
}

// Remove deletes the post and cascades into its comments. Allowed for the
// author, and for admins and moderators regardless of ownership.
func (s *PostService) Remove(ctx context.Context, id int64, userName string) (bool, error) {
	post, err := s.posts.Find(ctx, id)
	if errors.Is(err, domain.ErrPostNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if !authz.CanRemoveOwned(s.requesterRole(ctx, userName), post.UserName == userName) {
		return false, nil
	}

	removed, err := s.posts.DeleteWithComments(ctx, id)
	if errors.Is(err, domain.ErrPostNotFound) {
		// lost a race with a concurrent removal
		return false, nil
	}
	if err != nil {
		return false, err
	}
	s.logger.Info().
		Int64("post_id", id).
		Int("comments_removed", removed).
		Str("requester", userName).
		Msg("post removed")
	return true, nil
}

func (s *PostService) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.Find(ctx, id)
}

func (s *PostService) GetAll(ctx context.Context) ([]domain.Post, error) {
	return s.posts.All(ctx)
}

func (s *PostService) Comments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return s.comments.ByPost(ctx, postID)
}

// SearchTitles reports every post whose title contains the pattern, with all
// match offsets per post.
func (s *PostService) SearchTitles(ctx context.Context, pattern string) (*domain.SearchResult[domain.Post], error) {
	return s.searchPosts(ctx, pattern, func(p domain.Post) string { return p.Title })
}

// SearchContents reports every post whose content contains the pattern.
func (s *PostService) SearchContents(ctx context.Context, pattern string) (*domain.SearchResult[domain.Post], error) {
	return s.searchPosts(ctx, pattern, func(p domain.Post) string { return p.Content })
}

func (s *PostService) searchPosts(ctx context.Context, pattern string, field func(domain.Post) string) (*domain.SearchResult[domain.Post], error) {
	posts, err := s.posts.All(ctx)
	if err != nil {
		return nil, err
	}
	result := domain.NewSearchResult[domain.Post](pattern)
	for _, p := range posts {
		if offsets := search.Find(field(p), pattern); len(offsets) > 0 {
			result.AddMatch(p, offsets)
		}
	}
	return result, nil
}

// requesterRole resolves the acting user's stored role; unknown users carry
// no role and fall back to the ownership check alone.
func (s *PostService) requesterRole(ctx context.Context, userName string) domain.Role {
	user, err := s.users.Find(ctx, userName)
	if err != nil {
		return ""
	}
	return user.Role
}
