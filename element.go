package wcmp

import (
	"context"
	"fmt"
	"io"
	"maps"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HostElement is the element a component is attached to. From the outside
// it exposes exactly the component's public surface through its bridge;
// reads, writes and calls are delegated to the component's VM.
type HostElement struct {
	tag string

	mu    sync.RWMutex
	proto *Bridge
	vm    *VM
}

// NewHostElement creates a plain element with no component attached.
func NewHostElement(tag string) *HostElement {
	return &HostElement{tag: tag, proto: baseBridge}
}

// Tag returns the element's tag name.
func (e *HostElement) Tag() string {
	return e.tag
}

// Proto returns the bridge currently installed on the element.
func (e *HostElement) Proto() *Bridge {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.proto
}

// VM returns the VM attached to the element, or nil.
func (e *HostElement) VM() *VM {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.vm
}

// Get reads a public property through the bridge.
func (e *HostElement) Get(name string) (any, error) {
	vm, err := e.member(name, MemberAccessor)
	if err != nil {
		return nil, err
	}
	return vm.Get(name), nil
}

// Set writes a public property through the bridge.
func (e *HostElement) Set(name string, value any) error {
	vm, err := e.member(name, MemberAccessor)
	if err != nil {
		return err
	}
	vm.Set(name, value)
	return nil
}

// Call invokes a public method through the bridge.
func (e *HostElement) Call(ctx context.Context, name string, args ...any) (any, error) {
	vm, err := e.member(name, MemberMethod)
	if err != nil {
		return nil, err
	}
	fn, ok := vm.def.Method(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a method of %s", ErrNotExposed, name, vm.def.Name)
	}
	return fn(ctx, vm, args...)
}

// member checks that name is exposed with kind and returns the VM to
// delegate to.
func (e *HostElement) member(name string, kind MemberKind) (*VM, error) {
	e.mu.RLock()
	proto, vm := e.proto, e.vm
	e.mu.RUnlock()

	m, ok := proto.Lookup(name)
	if !ok || m.Kind != kind {
		return nil, fmt.Errorf("%w: <%s>.%s", ErrNotExposed, e.tag, name)
	}
	if vm == nil {
		return nil, fmt.Errorf("%w: <%s>", ErrNoVM, e.tag)
	}
	return vm, nil
}

// Connect runs the connected hook.
func (e *HostElement) Connect(ctx context.Context) error {
	vm := e.VM()
	if vm == nil {
		return fmt.Errorf("%w: <%s>", ErrNoVM, e.tag)
	}
	vm.mu.Lock()
	vm.connected = true
	vm.mu.Unlock()
	return vm.invoke(ctx, vm.def.Connected)
}

// Disconnect runs the disconnected hook.
func (e *HostElement) Disconnect(ctx context.Context) error {
	vm := e.VM()
	if vm == nil {
		return fmt.Errorf("%w: <%s>", ErrNoVM, e.tag)
	}
	vm.mu.Lock()
	vm.connected = false
	vm.mu.Unlock()
	return vm.invoke(ctx, vm.def.Disconnected)
}

// Render writes the component's output to w, then runs the rendered hook.
// The render hook, when declared, chooses the template; otherwise the
// definition's template is used.
func (e *HostElement) Render(ctx context.Context, w io.Writer) error {
	vm := e.VM()
	if vm == nil {
		return fmt.Errorf("%w: <%s>", ErrNoVM, e.tag)
	}

	tmpl := vm.def.Template
	if vm.def.Render != nil {
		if t := vm.def.Render(ctx, vm); t != nil {
			tmpl = t
		}
	}
	if err := tmpl.Render(ctx, w); err != nil {
		return vm.handleError(ctx, err)
	}

	vm.mu.Lock()
	vm.dirty = false
	vm.mu.Unlock()
	return vm.invoke(ctx, vm.def.Rendered)
}

// VM is the per-element component instance: reactive state, the
// author-side instance and the definition it was created from.
type VM struct {
	id       uuid.UUID
	def      *ComponentDef
	elm      *HostElement
	instance any
	log      *zap.Logger

	mu        sync.RWMutex
	state     map[string]any
	dirty     bool
	connected bool
}

// ID returns the VM's unique identifier.
func (vm *VM) ID() string {
	return vm.id.String()
}

// Def returns the component definition.
func (vm *VM) Def() *ComponentDef {
	return vm.def
}

// Element returns the host element.
func (vm *VM) Element() *HostElement {
	return vm.elm
}

// Instance returns the author-side instance created by the class factory,
// or nil when no class in the chain declares one.
func (vm *VM) Instance() any {
	return vm.instance
}

// Get reads a state value. Component code may read any field; only public
// fields are reachable from outside through the bridge.
func (vm *VM) Get(name string) any {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.state[name]
}

// Set writes a state value. Changing a public or tracked field marks the
// VM dirty.
func (vm *VM) Set(name string, value any) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	prev, had := vm.state[name]
	vm.state[name] = value
	if vm.def.IsObserved(name) && (!had || !reflect.DeepEqual(prev, value)) {
		vm.dirty = true
	}
}

// State returns a copy of the VM's state.
func (vm *VM) State() map[string]any {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return maps.Clone(vm.state)
}

// IsDirty reports whether reactive state changed since the last render.
func (vm *VM) IsDirty() bool {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.dirty
}

// IsConnected reports whether the element is connected.
func (vm *VM) IsConnected() bool {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.connected
}

func (vm *VM) invoke(ctx context.Context, hook HookFunc) error {
	if hook == nil {
		return nil
	}
	return vm.handleError(ctx, hook(ctx, vm))
}

// handleError routes err to the component's error hook, if any.
func (vm *VM) handleError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if vm.def.Error == nil {
		return err
	}
	vm.log.Debug("routing error to error hook",
		zap.String("component", vm.def.Name),
		zap.String("vm", vm.ID()),
		zap.Error(err),
	)
	return vm.def.Error(ctx, vm, err)
}

// CreateElement resolves ctor and returns a new host element backed by it.
func (reg *Registry) CreateElement(tag string, ctor any) (*HostElement, error) {
	def, err := reg.GetComponentDef(ctor)
	if err != nil {
		return nil, err
	}

	el := NewHostElement(tag)
	vm := &VM{
		id:    uuid.New(),
		def:   def,
		elm:   el,
		log:   reg.log,
		state: make(map[string]any),
	}
	if def.newInstance != nil {
		vm.instance = def.newInstance()
		if b, ok := vm.instance.(vmBinder); ok {
			b.bindVM(vm)
		}
	}

	el.mu.Lock()
	el.vm = vm
	el.mu.Unlock()
	SetElementProto(el, def)
	return el, nil
}

// CreateElement creates an element on the default registry.
func CreateElement(tag string, ctor any) (*HostElement, error) {
	return Default().CreateElement(tag, ctor)
}

// GetComponentConstructor returns the class that created el, or nil when
// el carries no component.
func GetComponentConstructor(el *HostElement) Class {
	if el == nil {
		return nil
	}
	vm := el.VM()
	if vm == nil {
		return nil
	}
	return vm.def.Ctor
}

// SetElementProto installs def's bridge on el. Nothing else changes.
func SetElementProto(el *HostElement, def *ComponentDef) {
	el.mu.Lock()
	el.proto = def.Bridge
	el.mu.Unlock()
}
