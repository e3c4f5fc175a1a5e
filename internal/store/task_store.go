package store

import (
	"sync"

	model "github.com/jessicacardoso1/taskmanager-web/internal/models"
)

// TaskStore is the in-memory cache of the task collection and the single
// source of truth for views. It keeps the remote store's response order and
// holds at most one task per id. It never merges partial updates: after any
// mutation the authoritative fix is a fresh list fetch.
type TaskStore struct {
	mu    sync.Mutex
	tasks []model.Task
}

func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// ReplaceAll swaps the whole collection for the given sequence. Entries not
// present in the new set are dropped. Duplicated ids keep their first
// occurrence so the uniqueness guarantee holds even against a misbehaving
// server.
func (s *TaskStore) ReplaceAll(tasks []model.Task) {
	replacement := make([]model.Task, 0, len(tasks))
	seen := make(map[int]struct{}, len(tasks))
	for _, task := range tasks {
		if _, ok := seen[task.ID]; ok {
			continue
		}
		seen[task.ID] = struct{}{}
		replacement = append(replacement, task)
	}

	s.mu.Lock()
	s.tasks = replacement
	s.mu.Unlock()
}

// Remove drops the task with the given id. Removing an absent id is a no-op:
// deletion is idempotent from the store's perspective.
func (s *TaskStore) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Tasks returns a copy of the current sequence, order preserved.
func (s *TaskStore) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]model.Task, len(s.tasks))
	copy(snapshot, s.tasks)
	return snapshot
}

func (s *TaskStore) Get(id int) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return model.Task{}, false
}

func (s *TaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
