package wcmp

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// staticTemplate is a comparable templ.Component.
type staticTemplate string

func (s staticTemplate) Render(ctx context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(s))
	return err
}

// countingLookup counts decorator lookups per class.
type countingLookup struct {
	*Decorators

	mu    sync.Mutex
	calls map[*Component]int
}

func newCountingLookup() *countingLookup {
	return &countingLookup{Decorators: NewDecorators(), calls: make(map[*Component]int)}
}

func (l *countingLookup) LookupDecorators(c *Component) (DecoratorMeta, bool) {
	l.mu.Lock()
	l.calls[c]++
	l.mu.Unlock()
	return l.Decorators.LookupDecorators(c)
}

func (l *countingLookup) count(c *Component) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[c]
}

func publicFields(names ...string) []PublicField {
	out := make([]PublicField, 0, len(names))
	for _, n := range names {
		out = append(out, PublicField{Name: n, Config: PropHasGetter | PropHasSetter})
	}
	return out
}

// chain builds Root -> Mid -> Leaf: Mid declares "label" and template T1,
// Leaf declares "count" and no template.
type chain struct {
	Root, Mid, Leaf *Component
	T0, T1          staticTemplate
}

func newChain(t *testing.T, reg *Registry) chain {
	t.Helper()
	c := chain{T0: "<root/>", T1: "<mid/>"}
	c.Root = Extend("Root", BaseElement, Proto{})
	c.Mid = Extend("Mid", c.Root, Proto{})
	c.Leaf = Extend("Leaf", c.Mid, Proto{})

	require.NoError(t, reg.RegisterComponent(c.Root, ComponentMeta{Name: "Root", Template: c.T0}))
	require.NoError(t, reg.RegisterDecorators(c.Mid, DecoratorMeta{PublicFields: publicFields("label")}))
	require.NoError(t, reg.RegisterComponent(c.Mid, ComponentMeta{Name: "Mid", Template: c.T1}))
	require.NoError(t, reg.RegisterDecorators(c.Leaf, DecoratorMeta{PublicFields: publicFields("count")}))
	return c
}

// selfPlaceholder returns a placeholder whose resolver returns itself.
func selfPlaceholder() *Placeholder {
	var p *Placeholder
	p = NewPlaceholder(func() Class { return p })
	return p
}
