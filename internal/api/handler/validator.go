package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hitforum/forum-system/internal/api/protocol"
)

var validate = validator.New()

// decode unmarshals a request body into its typed schema and validates it.
// A non-nil response is the client error to reply with; nil means the body
// is well-formed.
func decode(body json.RawMessage, dst any) *protocol.Response {
	if len(body) == 0 {
		body = []byte("{}")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		resp := protocol.ClientError("Invalid request body: " + err.Error())
		return &resp
	}
	if err := validateStruct(dst); err != nil {
		resp := protocol.ClientError(err.Error())
		return &resp
	}
	return nil
}

func validateStruct(i any) error {
	if err := validate.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
