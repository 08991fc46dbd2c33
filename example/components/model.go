package components

import "time"

// Status is the completion state of a todo.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Todo is one task.
type Todo struct {
	ID        string
	Title     string
	Status    Status
	CreatedAt time.Time
}

// Done reports whether the todo is completed.
func (t *Todo) Done() bool {
	return t.Status == StatusCompleted
}

// TodoStore is the data source wired into the components.
type TodoStore interface {
	Get(id string) *Todo
	Toggle(id string) bool
	List(status *Status) []*Todo
}
