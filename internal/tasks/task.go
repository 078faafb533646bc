// Package tasks owns the ordered task list and keeps it in sync with storage.
package tasks

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyText is returned when a task's text is empty after trimming.
	ErrEmptyText = errors.New("please enter a task")
	// ErrInvalidText is returned for text that is not valid UTF-8, which
	// the JSON encoding would silently rewrite.
	ErrInvalidText = errors.New("task text is not valid UTF-8")
)

// Task is a single to-do entry.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// NormalizeText trims surrounding whitespace and rejects empty or invalid text.
func NormalizeText(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", ErrInvalidText
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyText
	}
	return trimmed, nil
}
