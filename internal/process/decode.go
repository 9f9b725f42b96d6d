package process

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// envelope is the OData-style wrapper some endpoints return.
type envelope[T any] struct {
	Value []T `json:"value"`
}

// DecodeList decodes either a bare JSON array of processes or an object
// carrying the array in its "value" field.
func DecodeList(data []byte) ([]Process, error) {
	return DecodeListOf[Process](data)
}

// DecodeListOf is DecodeList for arbitrary element types.
func DecodeListOf[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}
	switch trimmed[0] {
	case '[':
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("decode process list: %w", err)
		}
		if out == nil {
			out = []T{}
		}
		return out, nil
	case '{':
		var env envelope[T]
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("decode process envelope: %w", err)
		}
		if env.Value == nil {
			env.Value = []T{}
		}
		return env.Value, nil
	default:
		return nil, fmt.Errorf("decode process list: unexpected leading %q", trimmed[0])
	}
}
