package wcmp

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Option configures a Registry.
type Option func(*Registry)

// WithDevMode enables development diagnostics: class prototypes are frozen
// once their definition is built, and unresolved circular placeholders are
// reported as such instead of as a plain ancestry error.
func WithDevMode(enabled bool) Option {
	return func(reg *Registry) {
		reg.devMode = enabled
	}
}

// WithLogger sets the registry's logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(reg *Registry) {
		if log != nil {
			reg.log = log
		}
	}
}

// WithMetrics enables Prometheus metrics for the definition cache.
func WithMetrics(m *Metrics) Option {
	return func(reg *Registry) {
		reg.metrics = m
	}
}

// WithDecoratorLookup replaces the registry's decorator store with an
// external lookup. RegisterDecorators still writes to the internal store,
// which is then unused.
func WithDecoratorLookup(l DecoratorLookup) Option {
	return func(reg *Registry) {
		reg.decoratorLookup = l
	}
}

// WithMetaLookup replaces the registry's registration store with an
// external lookup.
func WithMetaLookup(l MetaLookup) Option {
	return func(reg *Registry) {
		reg.metaLookup = l
	}
}

// Registry resolves and caches component definitions.
//
// Definitions are keyed by class identity and never evicted: component
// classes are load-time artifacts, so a definition built once stays valid
// for the life of the process. Concurrent lookups of the same class build
// its definition once. A failed build leaves no entry, so the next lookup
// retries from scratch.
type Registry struct {
	mu    sync.RWMutex
	defs  map[*Component]*ComponentDef
	group singleflight.Group

	decorators      *Decorators
	templates       *Templates
	decoratorLookup DecoratorLookup
	metaLookup      MetaLookup
	bridges         *bridgeFactory

	log     *zap.Logger
	metrics *Metrics
	devMode bool
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	reg := &Registry{
		defs:       make(map[*Component]*ComponentDef),
		decorators: NewDecorators(),
		templates:  NewTemplates(),
		bridges:    newBridgeFactory(),
		log:        zap.NewNop(),
	}
	reg.decoratorLookup = reg.decorators
	reg.metaLookup = reg.templates

	for _, opt := range opts {
		opt(reg)
	}
	return reg
}

// DevMode reports whether development diagnostics are enabled.
func (reg *Registry) DevMode() bool {
	return reg.devMode
}

// RegisterDecorators records the decorator metadata declared on c.
// Generated code calls this for every component type.
func (reg *Registry) RegisterDecorators(c *Component, meta DecoratorMeta) error {
	return reg.decorators.Register(c, meta)
}

// RegisterComponent records the display name and template of c.
func (reg *Registry) RegisterComponent(c *Component, meta ComponentMeta) error {
	return reg.templates.Register(c, meta)
}

// IsComponentConstructor reports whether v is a component constructor.
func (reg *Registry) IsComponentConstructor(v any) bool {
	return IsComponentConstructor(v)
}

// Len returns the number of cached definitions.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.defs)
}

// GetComponentDef returns the definition of ctor, building and caching it
// on first use. subclassName optionally names the class in errors, for
// example with the tag it is being defined under; the definition's Name is
// always the registered name, falling back to the class's intrinsic name.
//
// Values that are not component constructors fail with a *TypeError
// (errors.Is ErrNotComponent). BaseElement resolves to RootDef.
func (reg *Registry) GetComponentDef(ctor any, subclassName ...string) (*ComponentDef, error) {
	var name string
	if len(subclassName) > 0 {
		name = subclassName[0]
	}

	if c, ok := ctor.(*Component); ok && c != nil {
		if def, ok := reg.cached(c); ok {
			reg.metrics.hit()
			return def, nil
		}
	}

	// Recognition must come first: extracting metadata for a non-component
	// yields empty metadata rather than an error.
	if !IsComponentConstructor(ctor) {
		err := &TypeError{Value: describe(ctor)}
		reg.metrics.failed(err)
		return nil, err
	}
	return reg.getDef(ctor.(Class), name)
}

func (reg *Registry) cached(c *Component) (*ComponentDef, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	def, ok := reg.defs[c]
	return def, ok
}

// getDef dispatches on the class variant.
func (reg *Registry) getDef(c Class, name string) (*ComponentDef, error) {
	switch x := c.(type) {
	case *baseElement:
		return rootDef, nil
	case *Placeholder:
		resolved := x.Resolve()
		if resolved == Class(x) {
			return rootDef, nil
		}
		if isNilClass(resolved) {
			if name == "" {
				name = x.Name()
			}
			return nil, reg.unresolved(name)
		}
		return reg.getDef(resolved, name)
	case *Component:
		return reg.componentDef(x, name)
	}
	return nil, &TypeError{Value: describe(c)}
}

func (reg *Registry) componentDef(c *Component, name string) (*ComponentDef, error) {
	if def, ok := reg.cached(c); ok {
		reg.metrics.hit()
		return def, nil
	}
	reg.metrics.miss()

	v, err, _ := reg.group.Do(fmt.Sprintf("%p", c), func() (any, error) {
		if def, ok := reg.cached(c); ok {
			return def, nil
		}

		start := time.Now()
		def, err := reg.build(c, name)
		if err != nil {
			reg.metrics.failed(err)
			reg.log.Warn("component definition failed",
				zap.String("component", c.Name()),
				zap.Error(err),
			)
			return nil, err
		}

		reg.mu.Lock()
		reg.defs[c] = def
		reg.mu.Unlock()

		reg.metrics.built(time.Since(start).Seconds())
		reg.log.Debug("component definition built",
			zap.String("component", def.Name),
			zap.Strings("props", def.Props),
			zap.Strings("wire", def.WireNames()),
		)
		return def, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*ComponentDef), nil
}

// build computes the definition of c from its own metadata and the
// definition of its resolved superclass.
func (reg *Registry) build(c *Component, name string) (*ComponentDef, error) {
	cmeta, _ := reg.metaLookup.LookupMeta(c)
	if cmeta.Name == "" {
		cmeta.Name = c.Name()
	}
	// name only labels ancestry errors; the definition keeps the class's
	// own name.
	if name == "" {
		name = cmeta.Name
	}

	meta, _ := reg.decoratorLookup.LookupDecorators(c)
	if err := meta.Validate(cmeta.Name); err != nil {
		return nil, err
	}

	super, err := superOf(c, name, reg.devMode)
	if err != nil {
		return nil, err
	}
	superDef, err := reg.getDef(super, name)
	if err != nil {
		return nil, err
	}

	def, err := buildDef(c, cmeta.Name, meta, cmeta, superDef, reg.bridges)
	if err != nil {
		return nil, err
	}

	if reg.devMode {
		c.Freeze()
	}
	return def, nil
}

// unresolved reports a placeholder that no longer resolves. Development
// mode names the circular dependency.
func (reg *Registry) unresolved(name string) error {
	if reg.devMode {
		return &AncestryError{Class: name, Err: ErrUnresolvedPlaceholder}
	}
	return &AncestryError{Class: name, Err: ErrInvalidAncestry}
}

var (
	defaultMu       sync.RWMutex
	defaultRegistry = NewRegistry()
)

// Default returns the package-level registry used by the helper functions.
func Default() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// SetDefault replaces the package-level registry.
func SetDefault(reg *Registry) {
	defaultMu.Lock()
	defaultRegistry = reg
	defaultMu.Unlock()
}

// GetComponentDef resolves ctor on the default registry.
func GetComponentDef(ctor any, subclassName ...string) (*ComponentDef, error) {
	return Default().GetComponentDef(ctor, subclassName...)
}
