package wcmp

import "sync"

// Placeholder stands in for a class referenced before the code that defines
// it has finished initializing. It is either pending or resolved to a Class.
//
// A placeholder may instead carry a resolver function, consulted on every
// Resolve call. A resolver that returns the placeholder itself signals that
// the chain ends here at the framework's base type; host environments use
// this to substitute their own base without exposing it to component code:
//
//	var p *wcmp.Placeholder
//	p = wcmp.NewPlaceholder(func() wcmp.Class { return p })
type Placeholder struct {
	name string

	mu      sync.RWMutex
	target  Class
	resolve func() Class
}

// NewPlaceholder creates a placeholder backed by resolve. A nil resolve
// yields a pending placeholder to be completed with Bind.
func NewPlaceholder(resolve func() Class) *Placeholder {
	return &Placeholder{name: "placeholder", resolve: resolve}
}

// Pending creates an unbound placeholder named after the class it awaits.
func Pending(name string) *Placeholder {
	return &Placeholder{name: name}
}

// Name returns the name of the awaited class, or of the bound class once
// resolved.
func (p *Placeholder) Name() string {
	if p == nil {
		return "<nil>"
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.target != nil && p.target != Class(p) {
		return p.target.Name()
	}
	return p.name
}

func (p *Placeholder) class() {}

// Bind resolves a pending placeholder to target. Binding a placeholder to
// itself marks it as standing for the base type.
func (p *Placeholder) Bind(target Class) {
	p.mu.Lock()
	p.target = target
	p.mu.Unlock()
}

// Resolve performs exactly one indirection step. It returns nil while the
// placeholder is pending, and may return p itself (root reached) or another
// placeholder; callers never chase the result recursively.
func (p *Placeholder) Resolve() Class {
	p.mu.RLock()
	fn, target := p.resolve, p.target
	p.mu.RUnlock()
	if fn != nil {
		return fn()
	}
	return target
}

// Resolved reports whether Resolve currently yields a class.
func (p *Placeholder) Resolved() bool {
	return p.Resolve() != nil
}
