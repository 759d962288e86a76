package handler

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hitforum/forum-system/internal/api/protocol"
	"github.com/hitforum/forum-system/internal/core/domain"
	"github.com/hitforum/forum-system/internal/core/ports"
)

// CommentHandler routes comment/* verbs onto the comment service.
type CommentHandler struct {
	comments ports.CommentService
}

func NewCommentHandler(comments ports.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func (h *CommentHandler) Handle(ctx context.Context, verb string, body json.RawMessage) protocol.Response {
	switch verb {
	case "create":
		var req commentCreateRequest
		if resp := decode(body, &req); resp != nil {
			return *resp
		}
		if _, err := h.comments.Create(ctx, req.PostID.Int64(), req.UserName, req.Content); err != nil {
			return protocol.ServerError()
		}
		return protocol.Result("Comment created successfully")

	case "edit":
		var req commentEditRequest
		if resp := decode(body, &req); resp != nil {
			return *resp
		}
		edited, err := h.comments.Edit(ctx, req.CommentID.Int64(), req.UserName, req.Content)
		if err != nil {
			return protocol.ServerError()
		}
		return protocol.Result(edited)

	case "remove":
		var req commentRemoveRequest
		if resp := decode(body, &req); resp != nil {
			return *resp
		}
		removed, err := h.comments.Remove(ctx, req.CommentID.Int64(), req.UserName)
		if err != nil {
			return protocol.ServerError()
		}
		return protocol.Result(removed)

	case "get":
		var req commentRefRequest
		if resp := decode(body, &req); resp != nil {
			return *resp
		}
		comment, err := h.comments.GetByID(ctx, req.CommentID.Int64())
		if errors.Is(err, domain.ErrCommentNotFound) {
			return protocol.NotFound("Comment Not Found")
		}
		if err != nil {
			return protocol.ServerError()
		}
		return protocol.Result(comment)

	case "get-all":
		comments, err := h.comments.GetAll(ctx)
		if err != nil {
			return protocol.ServerError()
		}
		return protocol.Result(comments)

	case "search-contents":
		var req searchRequest
		if resp := decode(body, &req); resp != nil {
			return *resp
		}
		result, err := h.comments.SearchContents(ctx, req.SearchPattern)
		if err != nil {
			return protocol.ServerError()
		}
		return protocol.Result(result)

	default:
		return protocol.ClientError("Unknown action for comment resource.")
	}
}
