package wcmp

import (
	"fmt"
	"sync"

	"github.com/a-h/templ"
)

// PropConfig flags describe how a public field is implemented.
type PropConfig uint8

const (
	// PropHasGetter marks a public property backed by a getter.
	PropHasGetter PropConfig = 1 << iota
	// PropHasSetter marks a public property backed by a setter.
	PropHasSetter
)

// PublicField is a field declared public (wc:"api").
type PublicField struct {
	Name   string
	Config PropConfig
}

// Wire is a wired field or method: its value is provisioned by an adapter.
type Wire struct {
	Name    string
	Adapter string
	Params  map[string]string
	Method  bool
}

// DecoratorMeta is the decorator metadata declared on one class's own
// prototype. It never includes ancestor declarations; merging happens when
// the ComponentDef is built.
type DecoratorMeta struct {
	PublicFields   []PublicField
	PublicMethods  []string
	WiredFields    []Wire
	WiredMethods   []Wire
	ObservedFields []string
}

// PublicFieldNames returns the public field names in declaration order.
func (m DecoratorMeta) PublicFieldNames() []string {
	names := make([]string, 0, len(m.PublicFields))
	for _, f := range m.PublicFields {
		names = append(names, f.Name)
	}
	return names
}

// Validate checks that no member is declared by more than one decorator.
func (m DecoratorMeta) Validate(class string) error {
	seen := make(map[string]string)
	check := func(name, kind string) error {
		if name == "" {
			return fmt.Errorf("%w: empty %s name on %s", ErrInvalidDecorator, kind, class)
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s.%s is declared as both %s and %s", ErrInvalidDecorator, class, name, prev, kind)
		}
		seen[name] = kind
		return nil
	}
	for _, f := range m.PublicFields {
		if err := check(f.Name, "api field"); err != nil {
			return err
		}
	}
	for _, n := range m.PublicMethods {
		if err := check(n, "api method"); err != nil {
			return err
		}
	}
	for _, w := range m.WiredFields {
		if err := check(w.Name, "wired field"); err != nil {
			return err
		}
	}
	for _, w := range m.WiredMethods {
		if err := check(w.Name, "wired method"); err != nil {
			return err
		}
	}
	for _, n := range m.ObservedFields {
		if err := check(n, "tracked field"); err != nil {
			return err
		}
	}
	return nil
}

// DecoratorLookup returns the decorator metadata registered for a class.
// ok is false when the class has no registration.
type DecoratorLookup interface {
	LookupDecorators(c *Component) (meta DecoratorMeta, ok bool)
}

// ComponentMeta is the registration metadata of a class: its display name
// and template.
type ComponentMeta struct {
	Name     string
	Template templ.Component
}

// MetaLookup returns the registration metadata for a class.
type MetaLookup interface {
	LookupMeta(c *Component) (meta ComponentMeta, ok bool)
}

// Decorators is the in-memory DecoratorLookup used by Registry.
type Decorators struct {
	mu      sync.RWMutex
	byClass map[*Component]DecoratorMeta
}

// NewDecorators creates an empty decorator store.
func NewDecorators() *Decorators {
	return &Decorators{byClass: make(map[*Component]DecoratorMeta)}
}

// Register records meta for c. Wired methods are normalized to Method=true.
// Registration on a frozen class fails: its definition is already built.
func (d *Decorators) Register(c *Component, meta DecoratorMeta) error {
	if c.Frozen() {
		return &frozenError{class: c.Name(), member: "decorators"}
	}
	if err := meta.Validate(c.Name()); err != nil {
		return err
	}
	meta.WiredMethods = append([]Wire(nil), meta.WiredMethods...)
	for i := range meta.WiredMethods {
		meta.WiredMethods[i].Method = true
	}
	d.mu.Lock()
	d.byClass[c] = meta
	d.mu.Unlock()
	return nil
}

// LookupDecorators implements DecoratorLookup.
func (d *Decorators) LookupDecorators(c *Component) (DecoratorMeta, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	meta, ok := d.byClass[c]
	return meta, ok
}

// Templates is the in-memory MetaLookup used by Registry.
type Templates struct {
	mu      sync.RWMutex
	byClass map[*Component]ComponentMeta
}

// NewTemplates creates an empty registration store.
func NewTemplates() *Templates {
	return &Templates{byClass: make(map[*Component]ComponentMeta)}
}

// Register records the registration metadata for c.
func (t *Templates) Register(c *Component, meta ComponentMeta) error {
	if c.Frozen() {
		return &frozenError{class: c.Name(), member: "template"}
	}
	t.mu.Lock()
	t.byClass[c] = meta
	t.mu.Unlock()
	return nil
}

// LookupMeta implements MetaLookup.
func (t *Templates) LookupMeta(c *Component) (ComponentMeta, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	meta, ok := t.byClass[c]
	return meta, ok
}
