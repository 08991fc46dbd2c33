package main

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pthm/wcmp/example/components"
)

// Store is an in-memory todo store that implements components.TodoStore.
type Store struct {
	mu     sync.RWMutex
	todos  map[string]*components.Todo
	nextID int
}

// NewStore creates a new store with sample data.
func NewStore() *Store {
	s := &Store{
		todos:  make(map[string]*components.Todo),
		nextID: 1,
	}

	s.Add("Buy groceries")
	s.Add("Review PR #123")
	s.Add("Write documentation")

	return s
}

// Add creates a new todo and returns its ID.
func (s *Store) Add(title string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("todo-%d", s.nextID)
	s.nextID++
	s.todos[id] = &components.Todo{
		ID:        id,
		Title:     title,
		Status:    components.StatusPending,
		CreatedAt: time.Now(),
	}
	return id
}

// Get returns a todo by ID.
func (s *Store) Get(id string) *components.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.todos[id]
}

// Toggle toggles the completed status of a todo.
func (s *Store) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok {
		return false
	}
	if todo.Status == components.StatusCompleted {
		todo.Status = components.StatusPending
	} else {
		todo.Status = components.StatusCompleted
	}
	return true
}

// List returns all todos, optionally filtered by status, oldest first.
func (s *Store) List(status *components.Status) []*components.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*components.Todo
	for _, todo := range s.todos {
		if status != nil && todo.Status != *status {
			continue
		}
		result = append(result, todo)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}
