package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"go.uber.org/zap"
)

// fileData is the input of the output template for one source file.
type fileData struct {
	Source     string
	Package    string
	ImportPath string
	Runtime    string
	Context    bool
	Components []*ComponentInfo
}

// generateFile writes the generated file for the components declared in
// one source file.
func (g *Generator) generateFile(pkgPath, pkgName, source string, comps []*ComponentInfo) error {
	baseName := strings.TrimSuffix(filepath.Base(source), ".go")
	outputFile := filepath.Join(pkgPath, baseName+g.cfg.Suffix)

	names := make([]string, 0, len(comps))
	for _, c := range comps {
		names = append(names, c.TypeName)
	}
	g.log.Info("generating",
		zap.String("file", outputFile),
		zap.Strings("components", names),
		zap.Bool("dry_run", g.opts.DryRun),
	)

	if g.opts.DryRun {
		return nil
	}

	code, err := g.render(filepath.Base(source), pkgName, comps)
	if err != nil {
		return fmt.Errorf("render template: %w", err)
	}

	formatted, err := format.Source(code)
	if err != nil {
		// Write unformatted for debugging
		if writeErr := os.WriteFile(outputFile+".unformatted", code, 0644); writeErr == nil {
			g.log.Warn("wrote unformatted code for debugging", zap.String("file", outputFile+".unformatted"))
		}
		return fmt.Errorf("format source: %w", err)
	}

	return os.WriteFile(outputFile, formatted, 0644)
}

// render renders the generated code for comps.
func (g *Generator) render(source, pkgName string, comps []*ComponentInfo) ([]byte, error) {
	runtime := packageName(g.cfg.ImportPath)

	tmpl, err := template.New("wc").Funcs(template.FuncMap{
		"quote":     strconv.Quote,
		"hookField": func(m string) string { return hookMethods[m] },
		"params":    paramsLiteral,
		"superExpr": func(c *ComponentInfo) string {
			if c.Super == "" {
				return runtime + ".BaseElement"
			}
			return c.Super + "Class"
		},
		"propConfig": func() string {
			return runtime + ".PropHasGetter | " + runtime + ".PropHasSetter"
		},
		"publicFields": func(c *ComponentInfo) []FieldInfo { return fieldsOf(c, KindAPI) },
		"trackFields":  func(c *ComponentInfo) []FieldInfo { return fieldsOf(c, KindTrack) },
		"wireFields":   func(c *ComponentInfo) []FieldInfo { return fieldsOf(c, KindWire) },
		"publicMethods": func(c *ComponentInfo) []MethodInfo {
			return methodsOf(c, KindAPI)
		},
		"wireMethods": func(c *ComponentInfo) []MethodInfo {
			return methodsOf(c, KindWire)
		},
	}).Parse(wcTemplate)
	if err != nil {
		return nil, err
	}

	data := fileData{
		Source:     source,
		Package:    pkgName,
		ImportPath: g.cfg.ImportPath,
		Runtime:    runtime,
		Components: comps,
	}
	for _, c := range comps {
		if len(methodsOf(c, KindAPI)) > 0 {
			data.Context = true
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fieldsOf(c *ComponentInfo, kind DecoratorKind) []FieldInfo {
	var out []FieldInfo
	for _, f := range c.Fields {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}

func methodsOf(c *ComponentInfo, kind DecoratorKind) []MethodInfo {
	var out []MethodInfo
	for _, m := range c.Methods {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

// paramsLiteral renders adapter params as a map literal, sorted by key.
func paramsLiteral(params map[string]string) string {
	if len(params) == 0 {
		return "nil"
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("map[string]string{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", strconv.Quote(k), strconv.Quote(params[k]))
	}
	b.WriteString("}")
	return b.String()
}

const wcTemplate = `// Code generated by wcmp. DO NOT EDIT.
// Source: {{.Source}}

package {{.Package}}

import (
{{- if .Context}}
	"context"
{{end}}
	{{.Runtime}} "{{.ImportPath}}"
)
{{range $c := .Components}}
// {{$c.TypeName}}Class is the runtime class of {{$c.TypeName}}.
var {{$c.TypeName}}Class = {{$.Runtime}}.Extend({{quote $c.Name}}, {{superExpr $c}}, {{$.Runtime}}.Proto{
	New: func() any { return &{{$c.TypeName}}{} },
	{{- range $c.Hooks}}
	{{hookField .}}: {{$.Runtime}}.Call{{hookField .}},
	{{- end}}
	{{- with publicMethods $c}}
	Methods: map[string]{{$.Runtime}}.MethodFunc{
		{{- range .}}
		{{quote .Prop}}: func(ctx context.Context, vm *{{$.Runtime}}.VM, args ...any) (any, error) {
			return vm.Instance().(interface {
				{{.Method}}(context.Context, *{{$.Runtime}}.VM, ...any) (any, error)
			}).{{.Method}}(ctx, vm, args...)
		},
		{{- end}}
	},
	{{- end}}
})

// Register{{$c.TypeName}} records the decorator metadata and template of
// {{$c.TypeName}} on reg.
func Register{{$c.TypeName}}(reg *{{$.Runtime}}.Registry) error {
	err := reg.RegisterDecorators({{$c.TypeName}}Class, {{$.Runtime}}.DecoratorMeta{
		{{- with publicFields $c}}
		PublicFields: []{{$.Runtime}}.PublicField{
			{{- range .}}
			{Name: {{quote .Prop}}, Config: {{propConfig}}},
			{{- end}}
		},
		{{- end}}
		{{- with publicMethods $c}}
		PublicMethods: []string{ {{- range $i, $m := .}}{{if $i}}, {{end}}{{quote $m.Prop}}{{end -}} },
		{{- end}}
		{{- with wireFields $c}}
		WiredFields: []{{$.Runtime}}.Wire{
			{{- range .}}
			{Name: {{quote .Prop}}, Adapter: {{quote .Adapter}}, Params: {{params .Params}}},
			{{- end}}
		},
		{{- end}}
		{{- with wireMethods $c}}
		WiredMethods: []{{$.Runtime}}.Wire{
			{{- range .}}
			{Name: {{quote .Prop}}, Adapter: {{quote .Adapter}}, Params: {{params .Params}}, Method: true},
			{{- end}}
		},
		{{- end}}
		{{- with trackFields $c}}
		ObservedFields: []string{ {{- range $i, $f := .}}{{if $i}}, {{end}}{{quote $f.Prop}}{{end -}} },
		{{- end}}
	})
	if err != nil {
		return err
	}
	return reg.RegisterComponent({{$c.TypeName}}Class, {{$.Runtime}}.ComponentMeta{
		Name: {{quote $c.Name}},
		{{- if $c.Template}}
		Template: {{$c.Template}}(),
		{{- end}}
	})
}
{{end}}`
