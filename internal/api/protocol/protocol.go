// Package protocol defines the one-request-per-connection wire format:
// a single inbound {action, body} JSON object answered by a single
// {status, body} object.
package protocol

import (
	"encoding/json"
	"net/http"
)

// Request is the inbound envelope. Body stays raw until the action picks a
// typed schema for it.
type Request struct {
	Action string          `json:"action"`
	Body   json.RawMessage `json:"body"`
}

// Body is the outbound payload map.
type Body map[string]any

// Response is the outbound envelope. Status reuses HTTP status semantics:
// 200 success, 400 client error, 404 not found, 500 internal failure.
type Response struct {
	Status int  `json:"status"`
	Body   Body `json:"body"`
}

func OK(body Body) Response {
	return Response{Status: http.StatusOK, Body: body}
}

// Result is the common success shape wrapping a single value under "result".
func Result(v any) Response {
	return OK(Body{"result": v})
}

func ClientError(message string) Response {
	return Response{Status: http.StatusBadRequest, Body: Body{"error": message}}
}

func NotFound(message string) Response {
	return Response{Status: http.StatusNotFound, Body: Body{"error": message}}
}

func ServerError() Response {
	return Response{Status: http.StatusInternalServerError, Body: Body{"error": "Internal server error."}}
}
