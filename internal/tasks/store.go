package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/dohr-michael/todo/internal/storage"
)

// DefaultKey is the storage key holding the serialized list.
const DefaultKey = "todos"

// Store is the authoritative in-memory task list, persisted through a KV
// after every mutation.
type Store struct {
	mu     sync.Mutex
	kv     storage.KV
	key    string
	now    func() time.Time
	logger *slog.Logger

	tasks  []Task
	lastID int64
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithClock overrides the clock used to derive task ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore creates an empty Store backed by kv. Call Load to read the persisted list.
func NewStore(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		key:    DefaultKey,
		now:    time.Now,
		logger: slog.Default(),
		tasks:  []Task{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Key returns the storage key.
func (s *Store) Key() string { return s.key }

// Load replaces the in-memory list with the persisted one. An absent or
// malformed value yields an empty list without error; read failures are returned.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("load tasks: %w", err)
	}

	list := []Task{}
	if err == nil {
		decoded, derr := Decode(data)
		if derr != nil {
			s.logger.Debug("ignoring stored task list", "key", s.key, "error", derr)
		} else {
			list = decoded
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = list
	s.lastID = 0
	for _, t := range list {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	return nil
}

// Tasks returns a copy of the list in display order.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Counts returns the number of tasks and how many are completed.
func (s *Store) Counts() (total, completed int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.Completed {
			completed++
		}
	}
	return len(s.tasks), completed
}

// Get returns the task with the given id.
func (s *Store) Get(id int64) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return Task{}, false
}

// Add appends a new task. Empty text returns ErrEmptyText and invalid UTF-8
// returns ErrInvalidText; neither changes anything.
// If persisting fails the task stays in memory and the error is returned.
func (s *Store) Add(ctx context.Context, text string) (Task, error) {
	trimmed, err := NormalizeText(text)
	if err != nil {
		return Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := Task{ID: s.nextID(), Text: trimmed}
	s.tasks = append(s.tasks, t)
	s.logger.Debug("task added", "id", t.ID)

	return t, s.persistLocked(ctx)
}

// Toggle flips the completed flag of the matching task. An unknown id is a no-op.
func (s *Store) Toggle(ctx context.Context, id int64) (Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Task{}, false, nil
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	s.logger.Debug("task toggled", "id", id, "completed", s.tasks[i].Completed)

	return s.tasks[i], true, s.persistLocked(ctx)
}

// Remove deletes the matching task, keeping the order of the others.
// An unknown id is a no-op.
func (s *Store) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.removeLocked(id) {
		return false, nil
	}
	return true, s.persistLocked(ctx)
}

// Edit returns the task's text and removes the task. The caller is expected
// to put the text back in the input so the user can resubmit it.
func (s *Store) Edit(ctx context.Context, id int64) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return "", false, nil
	}
	text := s.tasks[i].Text
	s.removeLocked(id)

	return text, true, s.persistLocked(ctx)
}

// Persist writes the whole list to storage.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx)
}

func (s *Store) persistLocked(ctx context.Context) error {
	data, err := Encode(s.tasks)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		s.logger.Error("persist tasks", "key", s.key, "error", err)
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}

func (s *Store) removeLocked(id int64) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.logger.Debug("task removed", "id", id)
	return true
}

func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}

// nextID derives an id from the clock in milliseconds, bumping past the last
// issued id when two calls land in the same millisecond.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
