package tasks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is returned by Decode for payloads that are not a valid task list.
var ErrMalformed = errors.New("malformed task list")

// wireTask mirrors Task with pointers so missing fields can be told apart from zero values.
type wireTask struct {
	ID        *int64  `json:"id"`
	Text      *string `json:"text"`
	Completed bool    `json:"completed"`
}

// Encode serializes tasks as a JSON array. A nil list encodes as [].
func Encode(list []Task) ([]byte, error) {
	if list == nil {
		list = []Task{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array of tasks. JSON null and empty input decode to an
// empty list. Missing ids or text, empty text and duplicate ids are malformed.
func Decode(data []byte) ([]Task, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []Task{}, nil
	}

	var raw []wireTask
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	list := make([]Task, 0, len(raw))
	seen := make(map[int64]struct{}, len(raw))
	for i, w := range raw {
		if w.ID == nil {
			return nil, fmt.Errorf("%w: entry %d has no id", ErrMalformed, i)
		}
		if w.Text == nil || strings.TrimSpace(*w.Text) == "" {
			return nil, fmt.Errorf("%w: entry %d has no text", ErrMalformed, i)
		}
		if _, dup := seen[*w.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrMalformed, *w.ID)
		}
		seen[*w.ID] = struct{}{}
		list = append(list, Task{ID: *w.ID, Text: *w.Text, Completed: w.Completed})
	}
	return list, nil
}
