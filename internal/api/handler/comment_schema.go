package handler

import "github.com/hitforum/forum-system/internal/api/protocol"

type commentCreateRequest struct {
	PostID   *protocol.ID `json:"postId"   validate:"required"`
	UserName string       `json:"userName" validate:"required"`
	Content  string       `json:"content"`
}

type commentEditRequest struct {
	CommentID *protocol.ID `json:"commentId" validate:"required"`
	UserName  string       `json:"userName"  validate:"required"`
	Content   string       `json:"content"`
}

type commentRemoveRequest struct {
	CommentID *protocol.ID `json:"commentId" validate:"required"`
	UserName  string       `json:"userName"  validate:"required"`
}

type commentRefRequest struct {
	CommentID *protocol.ID `json:"commentId" validate:"required"`
}
