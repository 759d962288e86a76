package handler

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hitforum/forum-system/internal/api/protocol"
	"github.com/hitforum/forum-system/internal/core/domain"
	"github.com/hitforum/forum-system/internal/core/ports"
)

// UserHandler routes user/* verbs onto the user service.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Handle(ctx context.Context, verb string, body json.RawMessage) protocol.Response {
	switch verb {
	case "create":
		var req userCreateRequest
		if resp := decode(body, &req); resp != nil {
			return *resp
		}
		role, err := domain.ParseRole(req.Role)
		if err != nil {
			return protocol.ClientError("Invalid request message for user.")
		}
		created, err := h.users.Create(ctx, req.UserName, req.Password, role)
		if err != nil {
			return protocol.ServerError()
		}
		return protocol.Result(created)

	case "edit":
		var req userEditRequest
		if resp := decode(body, &req); resp != nil {
			return *resp
		}
		role, err := domain.ParseRole(req.NewRole)
		if err != nil {
			return protocol.ClientError("Invalid request message for user.")
		}
		edited, err := h.users.Edit(ctx, req.EditorName, req.UserName, req.OldPassword, req.NewPassword, role)
		if err != nil {
			return protocol.ServerError()
		}
		return protocol.Result(edited)

	case "remove":
		var req userRemoveRequest
		if resp := decode(body, &req); resp != nil {
			return *resp
		}
		removed, err := h.users.Remove(ctx, req.RemoverName, req.UserName, req.Password)
		if err != nil {
			return protocol.ServerError()
		}
		return protocol.Result(removed)

	case "authenticate":
		var req credentialsRequest
		if resp := decode(body, &req); resp != nil {
			return *resp
		}
		ok, err := h.users.Authenticate(ctx, req.UserName, req.Password)
		if err != nil {
			return protocol.ServerError()
		}
		return protocol.Result(ok)

	case "get":
		var req credentialsRequest
		if resp := decode(body, &req); resp != nil {
			return *resp
		}
		user, err := h.users.Get(ctx, req.UserName, req.Password)
		if errors.Is(err, domain.ErrUserNotFound) {
			return protocol.NotFound("User Not Found")
		}
		if err != nil {
			return protocol.ServerError()
		}
		return protocol.Result(user)

	default:
		return protocol.ClientError("Unknown action for user resource.")
	}
}
