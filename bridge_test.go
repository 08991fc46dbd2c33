package wcmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBridgeFactoryReuse(t *testing.T) {
	f := newBridgeFactory()

	a := f.bridge(baseBridge, []string{"x", "y"}, []string{"focus"})
	b := f.bridge(baseBridge, []string{"x", "y"}, []string{"focus"})
	assert.Same(t, a, b)

	assert.NotSame(t, a, f.bridge(baseBridge, []string{"y", "x"}, []string{"focus"}), "order is part of the surface")
	assert.NotSame(t, a, f.bridge(baseBridge, []string{"x", "y", "focus"}, nil), "kind is part of the surface")
	assert.NotSame(t, a, f.bridge(a, []string{"x", "y"}, []string{"focus"}), "parent is part of the surface")
	assert.Same(t, a, f.bridge(nil, []string{"x", "y"}, []string{"focus"}), "nil parent is the base bridge")
}

func TestBridgeReuseAcrossClasses(t *testing.T) {
	reg := NewRegistry()
	base := Extend("Base", BaseElement, Proto{})
	one := Extend("One", base, Proto{})
	two := Extend("Two", base, Proto{})
	three := Extend("Three", base, Proto{})
	for _, c := range []*Component{one, two} {
		assert.NoError(t, reg.RegisterDecorators(c, DecoratorMeta{PublicFields: publicFields("value")}))
	}
	assert.NoError(t, reg.RegisterDecorators(three, DecoratorMeta{PublicFields: publicFields("other")}))

	d1, err := reg.GetComponentDef(one)
	assert.NoError(t, err)
	d2, err := reg.GetComponentDef(two)
	assert.NoError(t, err)
	d3, err := reg.GetComponentDef(three)
	assert.NoError(t, err)

	assert.Same(t, d1.Bridge, d2.Bridge)
	assert.NotSame(t, d1.Bridge, d3.Bridge)
	assert.NotSame(t, d1, d2)
}

func TestBridgeLookup(t *testing.T) {
	f := newBridgeFactory()
	parent := f.bridge(baseBridge, []string{"label"}, []string{"reset"})
	child := f.bridge(parent, []string{"count"}, []string{"focus"})

	m, ok := child.Lookup("label")
	assert.True(t, ok)
	assert.Equal(t, Member{Name: "label", Kind: MemberAccessor, Owner: parent}, m)

	m, ok = child.Lookup("focus")
	assert.True(t, ok)
	assert.Equal(t, MemberMethod, m.Kind)
	assert.Same(t, child, m.Owner)

	assert.False(t, parent.Has("count"))
	assert.Equal(t, []string{"label", "count"}, child.Accessors())
	assert.Equal(t, []string{"reset", "focus"}, child.Methods())
	assert.Equal(t, []string{"count"}, child.OwnAccessors())
	assert.Equal(t, []string{"focus"}, child.OwnMethods())
	assert.Same(t, parent, child.Parent())
}

func TestBridgeShadowing(t *testing.T) {
	f := newBridgeFactory()
	parent := f.bridge(baseBridge, []string{"value"}, nil)
	child := f.bridge(parent, nil, []string{"value"})

	m, ok := child.Lookup("value")
	assert.True(t, ok)
	assert.Equal(t, MemberMethod, m.Kind)
	assert.Empty(t, child.Accessors())
	assert.Equal(t, []string{"value"}, child.Methods())
}

func TestMemberKindString(t *testing.T) {
	assert.Equal(t, "accessor", MemberAccessor.String())
	assert.Equal(t, "method", MemberMethod.String())
	assert.Equal(t, "unknown", MemberKind(0).String())
}
