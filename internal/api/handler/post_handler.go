package handler

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hitforum/forum-system/internal/api/protocol"
	"github.com/hitforum/forum-system/internal/core/domain"
	"github.com/hitforum/forum-system/internal/core/ports"
)

// PostHandler routes post/* verbs onto the post service.
type PostHandler struct {
	posts ports.PostService
}

func NewPostHandler(posts ports.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

func (h *PostHandler) Handle(ctx context.Context, verb string, body json.RawMessage) protocol.Response {
	switch verb {
	case "create":
		var req postCreateRequest
		if resp := decode(body, &req); resp != nil {
			return *resp
		}
		if _, err := h.posts.Create(ctx, req.Title, req.UserName, req.Content); err != nil {
			return protocol.ServerError()
		}
		return protocol.Result("Post created successfully")

	case "edit":
		var req postEditRequest
		if resp := decode(body, &req); resp != nil {
			return *resp
		}
		edited, err := h.posts.Edit(ctx, req.PostID.Int64(), req.Title, req.UserName, req.Content)
		if err != nil {
			return protocol.ServerError()
		}
		return protocol.Result(edited)

	case "remove":
		var req postRemoveRequest
		if resp := decode(body, &req); resp != nil {
			return *resp
		}
		removed, err := h.posts.Remove(ctx, req.PostID.Int64(), req.UserName)
		if err != nil {
			return protocol.ServerError()
		}
		return protocol.Result(removed)

	case "get":
		var req postRefRequest
		if resp := decode(body, &req); resp != nil {
			return *resp
		}
		post, err := h.posts.GetByID(ctx, req.PostID.Int64())
		if errors.Is(err, domain.ErrPostNotFound) {
			return protocol.NotFound("Post Not Found")
		}
		if err != nil {
			return protocol.ServerError()
		}
		return protocol.Result(post)

	case "get-all":
		posts, err := h.posts.GetAll(ctx)
		if err != nil {
			return protocol.ServerError()
		}
		return protocol.Result(posts)

	case "get-comments":
		var req postRefRequest
		if resp := decode(body, &req); resp != nil {
			return *resp
		}
		comments, err := h.posts.Comments(ctx, req.PostID.Int64())
		if err != nil {
			return protocol.ServerError()
		}
		return protocol.Result(comments)

	case "search-titles":
		var req searchRequest
		if resp := decode(body, &req); resp != nil {
			return *resp
		}
		result, err := h.posts.SearchTitles(ctx, req.SearchPattern)
		if err != nil {
			return protocol.ServerError()
		}
		return protocol.Result(result)

	case "search-contents":
		var req searchRequest
		if resp := decode(body, &req); resp != nil {
			return *resp
		}
		result, err := h.posts.SearchContents(ctx, req.SearchPattern)
		if err != nil {
			return protocol.ServerError()
		}
		return protocol.Result(result)

	default:
		return protocol.ClientError("Unknown action for post resource.")
	}
}
