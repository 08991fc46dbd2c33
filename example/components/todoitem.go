package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/pthm/wcmp"
)

// TodoItem shows a single todo.
type TodoItem struct {
	Card
	TodoID  string `wc:"api,name=todoId"`
	Done    bool   `wc:"api"`
	editing bool   `wc:"track"`
}

// ConnectedCallback resets the edit state.
func (c *TodoItem) ConnectedCallback(ctx context.Context, vm *wcmp.VM) error {
	vm.Set("editing", false)
	return nil
}

// Toggle flips the done flag and persists it through the store in ctx.
//
//wc:api
func (c *TodoItem) Toggle(ctx context.Context, vm *wcmp.VM, args ...any) (any, error) {
	store, ok := StoreFrom(ctx)
	if !ok {
		return nil, fmt.Errorf("toggle: no store in context")
	}
	id, _ := vm.Get("todoId").(string)
	if !store.Toggle(id) {
		return nil, fmt.Errorf("toggle: todo %q not found", id)
	}
	done, _ := vm.Get("done").(bool)
	vm.Set("done", !done)
	return !done, nil
}

// Render draws the item from its public state.
func (c *TodoItem) Render(ctx context.Context, vm *wcmp.VM) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		check := ""
		if done, _ := vm.Get("done").(bool); done {
			check = " checked"
		}
		_, err := fmt.Fprintf(w, `<li><input type="checkbox"%s> %s</li>`, check, title(vm))
		return err
	})
}
