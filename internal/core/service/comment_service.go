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

// CommentService mirrors PostService minus the title field and the cascade.
type CommentService struct {
	comments ports.CommentRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, users ports.UserRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, users: users, logger: logger}
}

// Create stores a new comment. The referenced post id is taken as-is; there
// is no foreign-key check.
func (s *CommentService) Create(ctx context.Context, postID int64, userName, content string) (*domain.Comment, error) {
	comment := &domain.Comment{
		ID:        s.comments.NextID(),
		PostID:    postID,
		UserName:  userName,
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.comments.Save(ctx, comment); err != nil {
		s.logger.Error().Err(err).Int64("comment_id", comment.ID).Msg("failed to create comment")
		return nil, err
	}
	s.logger.Info().Int64("comment_id", comment.ID).Int64("post_id", postID).Str("author", userName).Msg("comment created")
	return comment, nil
}

// Edit overwrites the content and marks the comment edited; author only.
func (s *CommentService) Edit(ctx context.Context, id int64, userName, content string) (bool, error) {
	comment, err := s.comments.Find(ctx, id)
	if errors.Is(err, domain.ErrCommentNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !authz.CanEditOwned(comment.UserName == userName) {
		return false, nil
	}

	comment.Content = content
	comment.Edited = true
	if err := s.comments.Save(ctx, comment); err != nil {
		s.logger.Error().Err(err).Int64("comment_id", id).Msg("failed to save edited comment")
		return false, err
	}
	return true, nil
}

// Remove deletes the comment; allowed for the author and for moderation roles.
func (s *CommentService) Remove(ctx context.Context, id int64, userName string) (bool, error) {
	comment, err := s.comments.Find(ctx, id)
	if errors.Is(err, domain.ErrCommentNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	role := domain.Role("")
	if user, err := s.users.Find(ctx, userName); err == nil {
		role = user.Role
	}
	if !authz.CanRemoveOwned(role, comment.UserName == userName) {
		return false, nil
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("comment_id", id).Msg("failed to delete comment")
		return false, err
	}
	s.logger.Info().Int64("comment_id", id).Str("requester", userName).Msg("comment removed")
	return true, nil
}

func (s *CommentService) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	return s.comments.Find(ctx, id)
}

func (s *CommentService) GetAll(ctx context.Context) ([]domain.Comment, error) {
	return s.comments.All(ctx)
}

// SearchContents reports every comment whose content contains the pattern.
func (s *CommentService) SearchContents(ctx context.Context, pattern string) (*domain.SearchResult[domain.Comment], error) {
	comments, err := s.comments.All(ctx)
	if err != nil {
		return nil, err
	}
	result := domain.NewSearchResult[domain.Comment](pattern)
	for _, c := range comments {
		if offsets := search.Find(c.Content, pattern); len(offsets) > 0 {
			result.AddMatch(c, offsets)
		}
	}
	return result, nil
}
