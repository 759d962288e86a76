package protocol

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is an entity identifier that decodes from either a JSON number or a
// numeric string, so clients may send {"postId": 7} or {"postId": "7"}.
// The coercion lives here, at the wire boundary, and nowhere else.
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var quoted string
		if err := json.Unmarshal(data, &quoted); err != nil {
			return err
		}
		s = strings.TrimSpace(quoted)
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*id = ID(v)
		return nil
	}
	// JSON numbers may arrive in float form (7.0); truncate like any
	// integral conversion would
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*id = ID(f)
		return nil
	}
	return fmt.Errorf("invalid id value %q", s)
}

func (id ID) Int64() int64 {
	return int64(id)
}
