package handler

import "github.com/hitforum/forum-system/internal/api/protocol"

type postCreateRequest struct {
	Title    string `json:"title"`
	UserName string `json:"userName" validate:"required"`
	Content  string `json:"content"`
}

type postEditRequest struct {
	PostID   *protocol.ID `json:"postId"   validate:"required"`
	Title    string       `json:"title"`
	UserName string       `json:"userName" validate:"required"`
	Content  string       `json:"content"`
}

type postRemoveRequest struct {
	PostID   *protocol.ID `json:"postId"   validate:"required"`
	UserName string       `json:"userName" validate:"required"`
}

// postRefRequest serves post/get and post/get-comments.
type postRefRequest struct {
	PostID *protocol.ID `json:"postId" validate:"required"`
}

// searchRequest serves every search-* verb. An empty pattern is legal and
// simply matches nothing.
type searchRequest struct {
	SearchPattern string `json:"searchPattern"`
}
