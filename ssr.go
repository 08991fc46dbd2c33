package wcmp

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/a-h/templ"
)

// Attributes returns the element's public properties as HTML attributes,
// named with AttrName.
//
// Nil values and false booleans are omitted; true booleans render as
// present attributes. Tracked and internal state is never included.
//
//	<x-counter { el.Attributes()... }></x-counter>
func (e *HostElement) Attributes() templ.Attributes {
	attrs := templ.Attributes{}
	vm := e.VM()
	if vm == nil {
		return attrs
	}

	for _, name := range e.Proto().Accessors() {
		switch v := vm.Get(name).(type) {
		case nil:
		case bool:
			if v {
				attrs[AttrName(name)] = true
			}
		case string:
			attrs[AttrName(name)] = v
		default:
			attrs[AttrName(name)] = fmt.Sprint(v)
		}
	}
	return attrs
}

// Outer renders the element including its host tag:
// <tag attrs...>rendered content</tag>.
//
// Use this for server-rendered pages embedding components:
//
//	@wcmp.Outer(el)
func Outer(el *HostElement) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeOpenTag(w, el.Tag(), el.Attributes()); err != nil {
			return err
		}
		if err := el.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</"+el.Tag()+">")
		return err
	})
}

func writeOpenTag(w io.Writer, tag string, attrs templ.Attributes) error {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	for _, name := range names {
		var err error
		switch v := attrs[name].(type) {
		case bool:
			_, err = io.WriteString(w, " "+templ.EscapeString(name))
		default:
			_, err = fmt.Fprintf(w, ` %s="%s"`, templ.EscapeString(name), templ.EscapeString(fmt.Sprint(v)))
		}
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ">")
	return err
}
