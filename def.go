package wcmp

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/a-h/templ"
)

// ComponentDef is the merged description of a component class: its public
// shape, its wiring, its lifecycle hooks and its template.
//
// Definitions are built once per class by a Registry and shared by every
// caller. They must be treated as read-only.
type ComponentDef struct {
	Ctor Class
	Name string

	// Props lists public field names, ancestor-first. A name re-declared by a
	// subclass keeps the position of its first declaration.
	Props       []string
	PropsConfig map[string]PropConfig

	// Methods lists public method names, ancestor-first.
	Methods []string

	// Wire lists wired fields and methods, ancestor-first.
	Wire []Wire

	ObservedFields []string

	Template templ.Component
	Bridge   *Bridge

	Connected    HookFunc
	Disconnected HookFunc
	Rendered     HookFunc
	Render       RenderFunc
	Error        ErrorHookFunc

	methodImpls map[string]MethodFunc
	newInstance func() any
}

// rootDef is the definition of BaseElement, the bottom of every merge.
var rootDef = &ComponentDef{
	Ctor:        BaseElement,
	Name:        BaseElement.Name(),
	PropsConfig: map[string]PropConfig{},
	Template:    templ.NopComponent,
	Bridge:      baseBridge,
	methodImpls: map[string]MethodFunc{},
}

// RootDef returns the definition of BaseElement.
func RootDef() *ComponentDef {
	return rootDef
}

// WireNames returns the names of the wired members, ancestor-first.
func (d *ComponentDef) WireNames() []string {
	names := make([]string, 0, len(d.Wire))
	for _, w := range d.Wire {
		names = append(names, w.Name)
	}
	return names
}

// HasProp reports whether name is a public field of the component.
func (d *ComponentDef) HasProp(name string) bool {
	_, ok := d.PropsConfig[name]
	return ok
}

// IsObserved reports whether writes to name should schedule a re-render:
// public fields and tracked fields are reactive.
func (d *ComponentDef) IsObserved(name string) bool {
	return d.HasProp(name) || slices.Contains(d.ObservedFields, name)
}

// Method returns the implementation of the public method name.
func (d *ComponentDef) Method(name string) (MethodFunc, bool) {
	fn, ok := d.methodImpls[name]
	return fn, ok
}

// buildDef merges a class's own metadata with its superclass definition.
//
// Order matters for determinism: bridge, props, wire, hooks, template, name.
func buildDef(
	ctor *Component,
	name string,
	meta DecoratorMeta,
	cmeta ComponentMeta,
	super *ComponentDef,
	bridges *bridgeFactory,
) (*ComponentDef, error) {
	proto := ctor.Proto()

	impls := maps.Clone(super.methodImpls)
	for m, fn := range proto.Methods {
		if _, inherited := impls[m]; inherited && fn != nil {
			impls[m] = fn
		}
	}
	for _, m := range meta.PublicMethods {
		fn := proto.Methods[m]
		if fn == nil {
			return nil, fmt.Errorf("%w: public method %s.%s has no implementation", ErrInvalidDecorator, name, m)
		}
		impls[m] = fn
	}

	ownProps := meta.PublicFieldNames()
	def := &ComponentDef{
		Ctor:           ctor,
		Bridge:         bridges.bridge(super.Bridge, ownProps, meta.PublicMethods),
		Props:          appendUnique(super.Props, ownProps...),
		PropsConfig:    maps.Clone(super.PropsConfig),
		Methods:        appendUnique(super.Methods, meta.PublicMethods...),
		Wire:           mergeWire(super.Wire, meta.WiredFields, meta.WiredMethods),
		ObservedFields: appendUnique(super.ObservedFields, meta.ObservedFields...),
		methodImpls:    impls,
	}
	for _, f := range meta.PublicFields {
		def.PropsConfig[f.Name] = f.Config
	}

	def.Connected = firstHook(proto.Connected, super.Connected)
	def.Disconnected = firstHook(proto.Disconnected, super.Disconnected)
	def.Rendered = firstHook(proto.Rendered, super.Rendered)
	def.Render = proto.Render
	if def.Render == nil {
		def.Render = super.Render
	}
	def.Error = proto.Error
	if def.Error == nil {
		def.Error = super.Error
	}
	def.newInstance = proto.New
	if def.newInstance == nil {
		def.newInstance = super.newInstance
	}

	def.Template = cmeta.Template
	if def.Template == nil {
		def.Template = super.Template
	}

	def.Name = name
	if def.Name == "" {
		def.Name = super.Name
	}
	return def, nil
}

func firstHook(own, inherited HookFunc) HookFunc {
	if own != nil {
		return own
	}
	return inherited
}

// appendUnique returns a copy of base extended with names not already
// present, preserving first-insertion order.
func appendUnique(base []string, names ...string) []string {
	out := slices.Clone(base)
	for _, n := range names {
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}

// mergeWire merges wire declarations by name; a redeclared name keeps its
// first position and takes the latest declaration.
func mergeWire(base []Wire, groups ...[]Wire) []Wire {
	out := slices.Clone(base)
	for _, group := range groups {
		for _, w := range group {
			idx := slices.IndexFunc(out, func(x Wire) bool { return x.Name == w.Name })
			if idx >= 0 {
				out[idx] = w
				continue
			}
			out = append(out, w)
		}
	}
	return out
}

// PublicProp describes a public property as seen by external services.
type PublicProp struct {
	Config PropConfig
	Type   string
	Attr   string
}

// PublicDef is the externally visible subset of a ComponentDef. Services
// that wrap components only care about the constructor's shape.
type PublicDef struct {
	Ctor    Class
	Name    string
	Props   map[string]PublicProp
	Methods map[string]MethodFunc
}

// Public extracts the externally visible shape of the definition.
func (d *ComponentDef) Public() PublicDef {
	pub := PublicDef{
		Ctor:    d.Ctor,
		Name:    d.Name,
		Props:   make(map[string]PublicProp, len(d.Props)),
		Methods: make(map[string]MethodFunc, len(d.Methods)),
	}
	for _, p := range d.Props {
		pub.Props[p] = PublicProp{Config: d.PropsConfig[p], Type: "any", Attr: AttrName(p)}
	}
	for _, m := range d.Methods {
		pub.Methods[m] = d.methodImpls[m]
	}
	return pub
}

// reflectiveAttrs are global HTML properties whose attribute is the
// lowercased property name rather than its kebab-case form.
var reflectiveAttrs = map[string]string{
	"accessKey":       "accesskey",
	"readOnly":        "readonly",
	"tabIndex":        "tabindex",
	"bgColor":         "bgcolor",
	"colSpan":         "colspan",
	"rowSpan":         "rowspan",
	"contentEditable": "contenteditable",
	"crossOrigin":     "crossorigin",
	"dateTime":        "datetime",
	"formAction":      "formaction",
	"isMap":           "ismap",
	"maxLength":       "maxlength",
	"minLength":       "minlength",
	"noValidate":      "novalidate",
	"useMap":          "usemap",
	"htmlFor":         "for",
}

// AttrName maps a property name to its HTML attribute name:
// "fooBar" becomes "foo-bar", "tabIndex" becomes "tabindex".
func AttrName(prop string) string {
	if attr, ok := reflectiveAttrs[prop]; ok {
		return attr
	}
	var sb strings.Builder
	for _, r := range prop {
		if unicode.IsUpper(r) {
			sb.WriteByte('-')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
