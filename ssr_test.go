package wcmp

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostElementAttributes(t *testing.T) {
	reg := NewRegistry()
	c := Extend("Field", BaseElement, Proto{})
	require.NoError(t, reg.RegisterDecorators(c, DecoratorMeta{
		PublicFields:   publicFields("maxLength", "isRequired", "isHidden", "placeholderText", "unset"),
		ObservedFields: []string{"draft"},
	}))

	el, err := reg.CreateElement("x-field", c)
	require.NoError(t, err)
	require.NoError(t, el.Set("maxLength", 12))
	require.NoError(t, el.Set("isRequired", true))
	require.NoError(t, el.Set("isHidden", false))
	require.NoError(t, el.Set("placeholderText", `say "hi"`))
	el.VM().Set("draft", "private")

	assert.Equal(t, templ.Attributes{
		"maxlength":        "12",
		"is-required":      true,
		"placeholder-text": `say "hi"`,
	}, el.Attributes())
}

func TestOuter(t *testing.T) {
	reg := NewRegistry()
	class := newCounterClass(t, reg)
	el, err := reg.CreateElement("x-counter", class)
	require.NoError(t, err)
	require.NoError(t, el.Set("label", "a<b"))

	var buf bytes.Buffer
	require.NoError(t, Outer(el).Render(context.Background(), &buf))
	assert.Equal(t, `<x-counter label="a&lt;b"><span>a&lt;b</span></x-counter>`, buf.String())
}
