package wcmp

import (
	"context"

	"github.com/a-h/templ"
)

// HookFunc is a lifecycle callback (connected, disconnected, rendered).
//
// Hooks receive the VM of the element being processed. Component code reads
// and writes reactive state through the VM:
//
//	func (c *Counter) ConnectedCallback(ctx context.Context, vm *wcmp.VM) error {
//	    vm.Set("count", 0)
//	    return nil
//	}
type HookFunc func(ctx context.Context, vm *VM) error

// RenderFunc selects the template for the current render.
//
// When a class declares a render hook it takes precedence over the
// registered template. Returning nil falls back to the definition template.
type RenderFunc func(ctx context.Context, vm *VM) templ.Component

// ErrorHookFunc receives errors raised by the other lifecycle hooks.
// Returning nil marks the error as handled.
type ErrorHookFunc func(ctx context.Context, vm *VM, err error) error

// MethodFunc implements a public method exposed through the bridge.
type MethodFunc func(ctx context.Context, vm *VM, args ...any) (any, error)

// vmBinder is satisfied by any type embedding Element.
type vmBinder interface {
	bindVM(vm *VM)
}

// Element is embedded by author component types.
//
// The generator recognises structs embedding Element (directly or through
// another component type) and lowers their wc tags into decorator metadata:
//
//	type Counter struct {
//	    wcmp.Element
//	    Label string `wc:"api"`
//	    Count int    `wc:"track"`
//	}
//
// At runtime Element gives the instance access to its VM.
type Element struct {
	vm *VM
}

func (e *Element) bindVM(vm *VM) {
	e.vm = vm
}

// VM returns the VM backing this instance, or nil before the instance is
// attached to a host element.
func (e *Element) VM() *VM {
	return e.vm
}

// ConnectedHook is implemented by instances declaring ConnectedCallback.
type ConnectedHook interface {
	ConnectedCallback(ctx context.Context, vm *VM) error
}

// DisconnectedHook is implemented by instances declaring DisconnectedCallback.
type DisconnectedHook interface {
	DisconnectedCallback(ctx context.Context, vm *VM) error
}

// RenderedHook is implemented by instances declaring RenderedCallback.
type RenderedHook interface {
	RenderedCallback(ctx context.Context, vm *VM) error
}

// Renderer is implemented by instances declaring Render.
type Renderer interface {
	Render(ctx context.Context, vm *VM) templ.Component
}

// ErrorHook is implemented by instances declaring ErrorCallback.
type ErrorHook interface {
	ErrorCallback(ctx context.Context, vm *VM, err error) error
}

// The Call* adapters dispatch a hook to the VM's instance. Generated code
// installs them on a class's Proto for every lifecycle method the type
// declares; the instance is asserted through an interface so subclasses
// embedding the declaring type dispatch correctly.

// CallConnected dispatches to the instance's ConnectedCallback.
func CallConnected(ctx context.Context, vm *VM) error {
	if h, ok := vm.Instance().(ConnectedHook); ok {
		return h.ConnectedCallback(ctx, vm)
	}
	return nil
}

// CallDisconnected dispatches to the instance's DisconnectedCallback.
func CallDisconnected(ctx context.Context, vm *VM) error {
	if h, ok := vm.Instance().(DisconnectedHook); ok {
		return h.DisconnectedCallback(ctx, vm)
	}
	return nil
}

// CallRendered dispatches to the instance's RenderedCallback.
func CallRendered(ctx context.Context, vm *VM) error {
	if h, ok := vm.Instance().(RenderedHook); ok {
		return h.RenderedCallback(ctx, vm)
	}
	return nil
}

// CallRender dispatches to the instance's Render.
func CallRender(ctx context.Context, vm *VM) templ.Component {
	if h, ok := vm.Instance().(Renderer); ok {
		return h.Render(ctx, vm)
	}
	return nil
}

// CallError dispatches to the instance's ErrorCallback. Without one the
// error is returned unchanged.
func CallError(ctx context.Context, vm *VM, err error) error {
	if h, ok := vm.Instance().(ErrorHook); ok {
		return h.ErrorCallback(ctx, vm, err)
	}
	return err
}
