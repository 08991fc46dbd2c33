package wcmp

import (
	"sync"
)

// Class is a component constructor. It is a closed set of three variants:
//   - BaseElement, the framework's root base type
//   - *Component, a user-defined component class
//   - *Placeholder, a circular module reference awaiting resolution
//
// Definition resolution and component recognition pattern-match over these
// variants instead of introspecting a runtime prototype chain.
type Class interface {
	Name() string
	class()
}

type baseElement struct {
	name string
}

func (b *baseElement) Name() string { return b.name }
func (b *baseElement) class()       {}

// BaseElement is the root of every component prototype chain.
var BaseElement Class = &baseElement{name: "Element"}

// Proto holds the members a class declares on its own prototype.
//
// Hooks left nil are inherited from the nearest ancestor that declares them.
// Methods holds implementations for the class's public methods; the names
// exposed on the bridge come from decorator metadata.
type Proto struct {
	Connected    HookFunc
	Disconnected HookFunc
	Rendered     HookFunc
	Render       RenderFunc
	Error        ErrorHookFunc
	Methods      map[string]MethodFunc

	// New creates the author-side instance for each element. Optional.
	New func() any
}

// Component is a user-defined component class.
//
// Components are created once at load time with Extend and compared by
// identity: two components with the same name are distinct classes.
//
//	var Mid = wcmp.Extend("Mid", Root, wcmp.Proto{})
//	var Leaf = wcmp.Extend("Leaf", Mid, wcmp.Proto{
//	    Connected: onConnect,
//	})
type Component struct {
	name  string
	super Class

	mu     sync.RWMutex
	proto  Proto
	frozen bool
}

// Extend creates a component class named name whose superclass is super.
//
// A nil super produces a class whose chain terminates without reaching
// BaseElement; resolving its definition fails with an ancestry error.
func Extend(name string, super Class, proto Proto) *Component {
	methods := make(map[string]MethodFunc, len(proto.Methods))
	for k, v := range proto.Methods {
		methods[k] = v
	}
	proto.Methods = methods
	return &Component{
		name:  name,
		super: super,
		proto: proto,
	}
}

// Name returns the class's intrinsic name.
func (c *Component) Name() string {
	if c == nil {
		return "<nil>"
	}
	return c.name
}

func (c *Component) class() {}

// Super returns the direct superclass link, which may be a placeholder or nil.
func (c *Component) Super() Class {
	return c.super
}

// Proto returns a copy of the class's own prototype members.
func (c *Component) Proto() Proto {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p := c.proto
	p.Methods = make(map[string]MethodFunc, len(c.proto.Methods))
	for k, v := range c.proto.Methods {
		p.Methods[k] = v
	}
	return p
}

// DefineMethod adds or replaces a method implementation on the prototype.
// Fails with ErrFrozen once the prototype has been frozen.
func (c *Component) DefineMethod(name string, fn MethodFunc) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frozen {
		return &frozenError{class: c.name, member: name}
	}
	c.proto.Methods[name] = fn
	return nil
}

// SetHooks replaces the lifecycle hooks declared on the prototype.
// Fails with ErrFrozen once the prototype has been frozen.
func (c *Component) SetHooks(p Proto) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frozen {
		return &frozenError{class: c.name, member: "hooks"}
	}
	c.proto.Connected = p.Connected
	c.proto.Disconnected = p.Disconnected
	c.proto.Rendered = p.Rendered
	c.proto.Render = p.Render
	c.proto.Error = p.Error
	return nil
}

// Freeze makes the prototype immutable. Registries in development mode
// freeze every class after building its definition.
func (c *Component) Freeze() {
	c.mu.Lock()
	c.frozen = true
	c.mu.Unlock()
}

// Frozen reports whether the prototype has been frozen.
func (c *Component) Frozen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frozen
}

type frozenError struct {
	class  string
	member string
}

func (e *frozenError) Error() string {
	return "wcmp: cannot define " + e.member + " on " + e.class + ": prototype is frozen"
}

func (e *frozenError) Unwrap() error {
	return ErrFrozen
}
