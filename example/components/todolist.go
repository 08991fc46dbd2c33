package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/pthm/wcmp"
)

// TodoList lists todos provisioned by the listTodos adapter.
//
//wc:name TodoListComponent
type TodoList struct {
	Card
	Filter string  `wc:"api"`
	Todos  []*Todo `wc:"wire,adapter=listTodos,status=$filter"`
}

// Render draws the heading and one row per wired todo.
func (c *TodoList) Render(ctx context.Context, vm *wcmp.VM) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<h2>%s</h2><ul>", title(vm)); err != nil {
			return err
		}
		todos, _ := vm.Get("todos").([]*Todo)
		for _, t := range todos {
			mark := " "
			if t.Done() {
				mark = "x"
			}
			if _, err := fmt.Fprintf(w, "<li>[%s] %s</li>", mark, templ.EscapeString(t.Title)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>")
		return err
	})
}
