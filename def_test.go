package wcmp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttrName(t *testing.T) {
	tests := map[string]string{
		"label":      "label",
		"fooBar":     "foo-bar",
		"recordId":   "record-id",
		"tabIndex":   "tabindex",
		"htmlFor":    "for",
		"readOnly":   "readonly",
		"ariaLabel":  "aria-label",
		"maxLength":  "maxlength",
		"someURLish": "some-u-r-lish",
	}
	for prop, want := range tests {
		assert.Equal(t, want, AttrName(prop), prop)
	}
}

func TestComponentDefPublic(t *testing.T) {
	reg := NewRegistry()
	class := newCounterClass(t, reg)
	child := Extend("Child", class, Proto{})
	require.NoError(t, reg.RegisterDecorators(child, DecoratorMeta{
		PublicFields: []PublicField{{Name: "maxValue", Config: PropHasGetter}},
	}))

	def, err := reg.GetComponentDef(child)
	require.NoError(t, err)
	pub := def.Public()

	assert.Same(t, child, pub.Ctor)
	assert.Equal(t, "Child", pub.Name)
	assert.Equal(t, map[string]PublicProp{
		"label":    {Config: PropHasGetter | PropHasSetter, Type: "any", Attr: "label"},
		"maxValue": {Config: PropHasGetter, Type: "any", Attr: "max-value"},
	}, pub.Props)

	require.Contains(t, pub.Methods, "reset")
	el, err := reg.CreateElement("x-child", child)
	require.NoError(t, err)
	got, err := pub.Methods["reset"](context.Background(), el.VM())
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestRootDef(t *testing.T) {
	root := RootDef()
	assert.Equal(t, BaseElement, root.Ctor)
	assert.Empty(t, root.Props)
	assert.Empty(t, root.Methods)
	assert.Empty(t, root.Wire)
	assert.Nil(t, root.Bridge.Parent())
	assert.NoError(t, root.Template.Render(context.Background(), nil))
	_, ok := root.Method("anything")
	assert.False(t, ok)
}
