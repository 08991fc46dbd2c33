package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/pthm/wcmp"
)

// Card is the base of every demo component: a titled box.
//
//wc:template cardTemplate
type Card struct {
	wcmp.Element
	Title string `wc:"api"`
}

func cardTemplate() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="card"><slot></slot></div>`)
		return err
	})
}

// title renders the card heading from the VM state.
func title(vm *wcmp.VM) string {
	if s, ok := vm.Get("title").(string); ok {
		return templ.EscapeString(s)
	}
	return ""
}
