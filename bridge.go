package wcmp

import (
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// MemberKind distinguishes bridge accessors from bridge methods.
type MemberKind uint8

const (
	// MemberAccessor is a get/set property delegating to component state.
	MemberAccessor MemberKind = iota + 1
	// MemberMethod is a callable delegating to a public method.
	MemberMethod
)

func (k MemberKind) String() string {
	switch k {
	case MemberAccessor:
		return "accessor"
	case MemberMethod:
		return "method"
	default:
		return "unknown"
	}
}

// Member is one name exposed by a bridge.
type Member struct {
	Name  string
	Kind  MemberKind
	Owner *Bridge
}

// Bridge is the prototype installed on host elements. It exposes exactly
// the public fields and methods declared along a component's chain: each
// bridge defines its class's own names and inherits the rest from its
// parent. Internal state is never reachable through a bridge.
type Bridge struct {
	parent    *Bridge
	accessors []string
	methods   []string
	members   map[string]MemberKind
}

// baseBridge is the bridge of BaseElement. It exposes nothing.
var baseBridge = &Bridge{members: map[string]MemberKind{}}

// Parent returns the superclass bridge, nil for the base bridge.
func (b *Bridge) Parent() *Bridge {
	return b.parent
}

// Lookup finds name on this bridge or its ancestors.
func (b *Bridge) Lookup(name string) (Member, bool) {
	for cur := b; cur != nil; cur = cur.parent {
		if kind, ok := cur.members[name]; ok {
			return Member{Name: name, Kind: kind, Owner: cur}, true
		}
	}
	return Member{}, false
}

// Has reports whether name is exposed.
func (b *Bridge) Has(name string) bool {
	_, ok := b.Lookup(name)
	return ok
}

// OwnAccessors returns the accessors defined by this bridge alone.
func (b *Bridge) OwnAccessors() []string {
	return slices.Clone(b.accessors)
}

// OwnMethods returns the methods defined by this bridge alone.
func (b *Bridge) OwnMethods() []string {
	return slices.Clone(b.methods)
}

// Accessors returns every exposed accessor, ancestor-first.
func (b *Bridge) Accessors() []string {
	return b.collect(MemberAccessor)
}

// Methods returns every exposed method, ancestor-first.
func (b *Bridge) Methods() []string {
	return b.collect(MemberMethod)
}

func (b *Bridge) collect(kind MemberKind) []string {
	var chain []*Bridge
	for cur := b; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	var out []string
	for i := len(chain) - 1; i >= 0; i-- {
		names := chain[i].accessors
		if kind == MemberMethod {
			names = chain[i].methods
		}
		for _, n := range names {
			// Only report the name where it is visible with this kind.
			if m, ok := b.Lookup(n); ok && m.Kind == kind && m.Owner == chain[i] {
				out = append(out, n)
			}
		}
	}
	return out
}

type bridgeKey struct {
	parent *Bridge
	sum    uint64
}

// bridgeFactory creates bridges, reusing one per (parent, own surface).
type bridgeFactory struct {
	mu    sync.Mutex
	cache map[bridgeKey][]*Bridge
}

func newBridgeFactory() *bridgeFactory {
	return &bridgeFactory{cache: make(map[bridgeKey][]*Bridge)}
}

// bridge returns the bridge extending parent with props and methods.
func (f *bridgeFactory) bridge(parent *Bridge, props, methods []string) *Bridge {
	if parent == nil {
		parent = baseBridge
	}
	key := bridgeKey{parent: parent, sum: surfaceSum(props, methods)}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, b := range f.cache[key] {
		if slices.Equal(b.accessors, props) && slices.Equal(b.methods, methods) {
			return b
		}
	}

	b := &Bridge{
		parent:    parent,
		accessors: slices.Clone(props),
		methods:   slices.Clone(methods),
		members:   make(map[string]MemberKind, len(props)+len(methods)),
	}
	for _, p := range props {
		b.members[p] = MemberAccessor
	}
	for _, m := range methods {
		b.members[m] = MemberMethod
	}
	f.cache[key] = append(f.cache[key], b)
	return b
}

func surfaceSum(props, methods []string) uint64 {
	d := xxhash.New()
	for _, p := range props {
		_, _ = d.WriteString(p)
		_, _ = d.Write([]byte{0})
	}
	_, _ = d.Write([]byte{1})
	for _, m := range methods {
		_, _ = d.WriteString(m)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}
