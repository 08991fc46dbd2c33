package components

import (
	"context"
	"fmt"
	"strings"

	"github.com/pthm/wcmp"
)

//go:generate go run github.com/pthm/wcmp/cmd/wcmp generate .

// Register records every demo component on reg. Call this once at startup,
// before the first definition lookup.
func Register(reg *wcmp.Registry) error {
	for _, register := range []func(*wcmp.Registry) error{
		RegisterCard,
		RegisterTodoItem,
		RegisterTodoList,
	} {
		if err := register(reg); err != nil {
			return err
		}
	}
	return nil
}

type storeKey struct{}

// WithStore returns a context carrying store for public methods.
func WithStore(ctx context.Context, store TodoStore) context.Context {
	return context.WithValue(ctx, storeKey{}, store)
}

// StoreFrom returns the store carried by ctx.
func StoreFrom(ctx context.Context) (TodoStore, bool) {
	store, ok := ctx.Value(storeKey{}).(TodoStore)
	return store, ok
}

// Provision fills the element's wired fields from store. Params starting
// with $ refer to the element's own state.
func Provision(el *wcmp.HostElement, store TodoStore) error {
	vm := el.VM()
	if vm == nil {
		return wcmp.ErrNoVM
	}
	for _, w := range vm.Def().Wire {
		switch w.Adapter {
		case "listTodos":
			var status *Status
			if s, _ := param(vm, w.Params["status"]).(string); s != "" {
				st := Status(s)
				status = &st
			}
			vm.Set(w.Name, store.List(status))
		default:
			return fmt.Errorf("unknown adapter %q for %s.%s", w.Adapter, vm.Def().Name, w.Name)
		}
	}
	return nil
}

func param(vm *wcmp.VM, v string) any {
	if name, ok := strings.CutPrefix(v, "$"); ok {
		return vm.Get(name)
	}
	return v
}
