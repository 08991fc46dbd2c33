package components

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/pthm/wcmp"
)

type fakeStore struct {
	todos []*Todo
}

func (s *fakeStore) Get(id string) *Todo {
	for _, t := range s.todos {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *fakeStore) Toggle(id string) bool {
	t := s.Get(id)
	if t == nil {
		return false
	}
	if t.Done() {
		t.Status = StatusPending
	} else {
		t.Status = StatusCompleted
	}
	return true
}

func (s *fakeStore) List(status *Status) []*Todo {
	var out []*Todo
	for _, t := range s.todos {
		if status == nil || t.Status == *status {
			out = append(out, t)
		}
	}
	return out
}

func newStore() *fakeStore {
	return &fakeStore{todos: []*Todo{
		{ID: "a", Title: "Alpha", Status: StatusPending},
		{ID: "b", Title: "Beta", Status: StatusCompleted},
	}}
}

func TestDefinitions(t *testing.T) {
	reg := wcmp.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	def, err := reg.GetComponentDef(TodoItemClass)
	if err != nil {
		t.Fatalf("GetComponentDef() error = %v", err)
	}
	if want := []string{"title", "todoId", "done"}; !slices.Equal(def.Props, want) {
		t.Errorf("Props = %v, want %v", def.Props, want)
	}
	if want := []string{"toggle"}; !slices.Equal(def.Methods, want) {
		t.Errorf("Methods = %v, want %v", def.Methods, want)
	}

	list, err := reg.GetComponentDef(TodoListClass)
	if err != nil {
		t.Fatalf("GetComponentDef() error = %v", err)
	}
	if list.Name != "TodoListComponent" {
		t.Errorf("Name = %q, want TodoListComponent", list.Name)
	}
	if want := []string{"todos"}; !slices.Equal(list.WireNames(), want) {
		t.Errorf("WireNames() = %v, want %v", list.WireNames(), want)
	}
}

func TestToggle(t *testing.T) {
	reg := wcmp.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	store := newStore()
	ctx := WithStore(context.Background(), store)

	el, err := reg.CreateElement("todo-item", TodoItemClass)
	if err != nil {
		t.Fatalf("CreateElement() error = %v", err)
	}
	if err := el.Set("todoId", "a"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := el.Call(ctx, "toggle")
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if got != true {
		t.Errorf("toggle returned %v, want true", got)
	}
	if !store.Get("a").Done() {
		t.Error("store todo not toggled")
	}

	if err := el.Set("editing", true); err == nil {
		t.Error("tracked field must not be settable through the element")
	}
}

func TestProvisionAndRender(t *testing.T) {
	reg := wcmp.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	el, err := reg.CreateElement("todo-list", TodoListClass)
	if err != nil {
		t.Fatalf("CreateElement() error = %v", err)
	}
	if err := el.Set("filter", "completed"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := Provision(el, newStore()); err != nil {
		t.Fatalf("Provision() error = %v", err)
	}

	var buf bytes.Buffer
	if err := wcmp.Outer(el).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := buf.String()
	if !strings.HasPrefix(html, `<todo-list filter="completed">`) {
		t.Errorf("unexpected host tag: %s", html)
	}
	if !strings.Contains(html, "[x] Beta") || strings.Contains(html, "Alpha") {
		t.Errorf("unexpected list content: %s", html)
	}
}
