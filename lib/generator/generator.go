package generator

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// Options configures the generator.
type Options struct {
	DryRun bool
	Config Config
	Logger *zap.Logger
}

// Generator lowers component source into wcmp runtime calls.
type Generator struct {
	opts Options
	cfg  Config
	log  *zap.Logger
	fset *token.FileSet
}

// New creates a new generator. A zero Config selects DefaultConfig.
func New(opts Options) *Generator {
	cfg := opts.Config
	if cfg.Tag == "" {
		cfg = DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		opts: opts,
		cfg:  cfg,
		log:  log,
		fset: token.NewFileSet(),
	}
}

// Generate generates code for the given package patterns.
func (g *Generator) Generate(patterns ...string) error {
	packages, err := g.findPackages(patterns)
	if err != nil {
		return err
	}

	for _, pkg := range packages {
		if err := g.generatePackage(pkg); err != nil {
			return fmt.Errorf("package %s: %w", pkg, err)
		}
	}

	return nil
}

// Clean removes generated files for the given package patterns.
func (g *Generator) Clean(patterns ...string) error {
	packages, err := g.findPackages(patterns)
	if err != nil {
		return err
	}

	for _, pkg := range packages {
		if err := g.cleanPackage(pkg); err != nil {
			return fmt.Errorf("package %s: %w", pkg, err)
		}
	}

	return nil
}

// findPackages resolves package patterns to directory paths.
func (g *Generator) findPackages(patterns []string) ([]string, error) {
	var packages []string

	for _, pattern := range patterns {
		if !strings.HasSuffix(pattern, "/...") {
			packages = append(packages, pattern)
			continue
		}

		root := strings.TrimSuffix(pattern, "/...")
		if root == "" {
			root = "."
		}

		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			base := d.Name()
			if path != root && (strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") || slices.Contains(g.cfg.SkipDirs, base)) {
				return filepath.SkipDir
			}

			entries, err := os.ReadDir(path)
			if err != nil {
				return nil
			}
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".go") && !strings.HasSuffix(entry.Name(), "_test.go") {
					packages = append(packages, path)
					break
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return packages, nil
}

// generatePackage generates code for a single package.
func (g *Generator) generatePackage(pkgPath string) error {
	pkgs, err := parser.ParseDir(g.fset, pkgPath, func(info os.FileInfo) bool {
		name := info.Name()
		return !strings.HasSuffix(name, "_test.go") && !strings.HasSuffix(name, g.cfg.Suffix)
	}, parser.ParseComments)
	if err != nil {
		return err
	}

	for pkgName, pkg := range pkgs {
		components, err := g.findComponents(pkg)
		if err != nil {
			return err
		}
		if len(components) == 0 {
			continue
		}

		bySource := make(map[string][]*ComponentInfo)
		for _, comp := range components {
			bySource[comp.SourceFile] = append(bySource[comp.SourceFile], comp)
		}
		sources := make([]string, 0, len(bySource))
		for src := range bySource {
			sources = append(sources, src)
		}
		sort.Strings(sources)

		for _, src := range sources {
			if err := g.generateFile(pkgPath, pkgName, src, bySource[src]); err != nil {
				return err
			}
		}
	}

	return nil
}

// cleanPackage removes generated files from a package.
func (g *Generator) cleanPackage(pkgPath string) error {
	entries, err := os.ReadDir(pkgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), g.cfg.Suffix) {
			continue
		}
		path := filepath.Join(pkgPath, entry.Name())
		g.log.Info("removing", zap.String("file", path), zap.Bool("dry_run", g.opts.DryRun))
		if !g.opts.DryRun {
			if err := os.Remove(path); err != nil {
				return err
			}
		}
	}

	return nil
}

// DecoratorKind is the decorator a member is declared with.
type DecoratorKind string

const (
	KindAPI   DecoratorKind = "api"
	KindTrack DecoratorKind = "track"
	KindWire  DecoratorKind = "wire"
)

// ComponentInfo holds information about a discovered component type.
type ComponentInfo struct {
	SourceFile string
	TypeName   string       // e.g., "Counter"
	Name       string       // display name, from //wc:name or TypeName
	Super      string       // embedded component type; empty for wcmp.Element
	Template   string       // template function from //wc:template
	Fields     []FieldInfo  // decorated fields
	Methods    []MethodInfo // decorated methods
	Hooks      []string     // lifecycle methods declared on the type
}

// FieldInfo is a struct field carrying a decorator tag.
type FieldInfo struct {
	Field   string
	Prop    string
	Kind    DecoratorKind
	Adapter string
	Params  map[string]string
}

// MethodInfo is a method carrying a //wc:api or //wc:wire directive.
type MethodInfo struct {
	Method  string
	Prop    string
	Kind    DecoratorKind
	Adapter string
	Params  map[string]string
}

// hookMethods maps lifecycle method names to Proto fields.
var hookMethods = map[string]string{
	"ConnectedCallback":    "Connected",
	"DisconnectedCallback": "Disconnected",
	"RenderedCallback":     "Rendered",
	"Render":               "Render",
	"ErrorCallback":        "Error",
}

type structDecl struct {
	file     string
	spec     *ast.TypeSpec
	doc      *ast.CommentGroup
	st       *ast.StructType
	embeds   []string
	embedsEl bool
}

// findComponents finds all component types in a package. A struct is a
// component when it embeds wcmp.Element or another component type of the
// same package.
func (g *Generator) findComponents(pkg *ast.Package) ([]*ComponentInfo, error) {
	decls := make(map[string]*structDecl)
	var order []string

	files := make([]string, 0, len(pkg.Files))
	for name := range pkg.Files {
		files = append(files, name)
	}
	sort.Strings(files)

	for _, filename := range files {
		file := pkg.Files[filename]
		alias := g.runtimeAlias(file)

		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				structType, ok := typeSpec.Type.(*ast.StructType)
				if !ok {
					continue
				}

				sd := &structDecl{file: filename, spec: typeSpec, st: structType, doc: typeSpec.Doc}
				if sd.doc == nil {
					sd.doc = genDecl.Doc
				}
				sd.embedsEl, sd.embeds = g.embeddedTypes(structType, alias)
				decls[typeSpec.Name.Name] = sd
				order = append(order, typeSpec.Name.Name)
			}
		}
	}

	// Resolve subclasses until no new component is found.
	super := make(map[string]string)
	isComp := make(map[string]bool)
	for changed := true; changed; {
		changed = false
		for _, name := range order {
			if isComp[name] {
				continue
			}
			sd := decls[name]
			if sd.embedsEl {
				isComp[name], super[name], changed = true, "", true
				continue
			}
			for _, e := range sd.embeds {
				if isComp[e] {
					isComp[name], super[name], changed = true, e, true
					break
				}
			}
		}
	}

	var components []*ComponentInfo
	for _, name := range order {
		if !isComp[name] {
			continue
		}
		sd := decls[name]
		comp := &ComponentInfo{
			SourceFile: sd.file,
			TypeName:   name,
			Name:       name,
			Super:      super[name],
		}
		for _, d := range directives(sd.doc) {
			switch d.name {
			case "name":
				comp.Name = d.arg
			case "template":
				comp.Template = d.arg
			}
		}

		fields, err := g.findFields(sd.st)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		comp.Fields = fields

		for _, filename := range files {
			methods, hooks, err := g.findMethods(pkg.Files[filename], name)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			comp.Methods = append(comp.Methods, methods...)
			comp.Hooks = append(comp.Hooks, hooks...)
		}
		sort.Strings(comp.Hooks)

		components = append(components, comp)
	}

	return components, nil
}

// runtimeAlias returns the local name of the runtime package in file.
func (g *Generator) runtimeAlias(file *ast.File) string {
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != g.cfg.ImportPath {
			continue
		}
		if imp.Name != nil {
			return imp.Name.Name
		}
		return packageName(path)
	}
	return ""
}

// packageName guesses the package name of an import path: the last
// element, skipping a major version suffix ("example.com/wcmp/v2" is wcmp).
func packageName(importPath string) string {
	elems := strings.Split(strings.TrimSuffix(importPath, "/"), "/")
	name := elems[len(elems)-1]
	if len(elems) > 1 && isMajorVersion(name) {
		name = elems[len(elems)-2]
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return '_'
	}, name)
}

func isMajorVersion(elem string) bool {
	if len(elem) < 2 || elem[0] != 'v' {
		return false
	}
	for _, r := range elem[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// embeddedTypes reports whether st embeds <alias>.Element and lists the
// other embedded types declared in the same package.
func (g *Generator) embeddedTypes(st *ast.StructType, alias string) (bool, []string) {
	var embedsEl bool
	var local []string
	for _, field := range st.Fields.List {
		if len(field.Names) != 0 {
			continue
		}
		typ := field.Type
		if star, ok := typ.(*ast.StarExpr); ok {
			typ = star.X
		}
		switch x := typ.(type) {
		case *ast.SelectorExpr:
			if ident, ok := x.X.(*ast.Ident); ok && alias != "" && ident.Name == alias && x.Sel.Name == "Element" {
				embedsEl = true
			}
		case *ast.Ident:
			local = append(local, x.Name)
		}
	}
	return embedsEl, local
}

// findFields collects fields tagged with the decorator tag.
func (g *Generator) findFields(st *ast.StructType) ([]FieldInfo, error) {
	var fields []FieldInfo
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 || field.Tag == nil {
			continue
		}
		tagValue, err := strconv.Unquote(field.Tag.Value)
		if err != nil {
			continue
		}
		raw, ok := reflect.StructTag(tagValue).Lookup(g.cfg.Tag)
		if !ok || raw == "-" {
			continue
		}

		for _, name := range field.Names {
			d, err := parseDecorator(raw)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", name.Name, err)
			}
			prop := d.name
			if prop == "" {
				prop = lowerFirst(name.Name)
			}
			fields = append(fields, FieldInfo{
				Field:   name.Name,
				Prop:    prop,
				Kind:    d.kind,
				Adapter: d.adapter,
				Params:  d.params,
			})
		}
	}
	return fields, nil
}

// findMethods finds lifecycle hooks and decorated methods declared on
// typeName in file.
func (g *Generator) findMethods(file *ast.File, typeName string) ([]MethodInfo, []string, error) {
	var methods []MethodInfo
	var hooks []string

	for _, decl := range file.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || funcDecl.Recv == nil || len(funcDecl.Recv.List) == 0 {
			continue
		}
		if receiverName(funcDecl.Recv.List[0].Type) != typeName {
			continue
		}

		name := funcDecl.Name.Name
		if _, ok := hookMethods[name]; ok {
			hooks = append(hooks, name)
			continue
		}

		for _, d := range directives(funcDecl.Doc) {
			if d.name != string(KindAPI) && d.name != string(KindWire) {
				continue
			}
			spec, err := parseDecorator(d.name + optionsFromArgs(d.arg))
			if err != nil {
				return nil, nil, fmt.Errorf("method %s: %w", name, err)
			}
			prop := spec.name
			if prop == "" {
				prop = lowerFirst(name)
			}
			methods = append(methods, MethodInfo{
				Method:  name,
				Prop:    prop,
				Kind:    spec.kind,
				Adapter: spec.adapter,
				Params:  spec.params,
			})
		}
	}

	return methods, hooks, nil
}

func receiverName(expr ast.Expr) string {
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

type directive struct {
	name string
	arg  string
}

// directives extracts //wc:<name> [arg] lines from a comment group.
func directives(doc *ast.CommentGroup) []directive {
	if doc == nil {
		return nil
	}
	var out []directive
	for _, c := range doc.List {
		text, ok := strings.CutPrefix(c.Text, "//wc:")
		if !ok {
			continue
		}
		name, arg, _ := strings.Cut(strings.TrimSpace(text), " ")
		out = append(out, directive{name: name, arg: strings.TrimSpace(arg)})
	}
	return out
}

// optionsFromArgs turns "adapter=x id=$y" into ",adapter=x,id=$y".
func optionsFromArgs(arg string) string {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return ""
	}
	return "," + strings.Join(fields, ",")
}

type decoratorSpec struct {
	kind    DecoratorKind
	name    string
	adapter string
	params  map[string]string
}

// parseDecorator parses a tag value: kind[,name=prop][,adapter=a][,k=v...].
func parseDecorator(raw string) (decoratorSpec, error) {
	parts := strings.Split(raw, ",")
	spec := decoratorSpec{kind: DecoratorKind(strings.TrimSpace(parts[0]))}

	switch spec.kind {
	case KindAPI, KindTrack, KindWire:
	default:
		return spec, fmt.Errorf("unknown decorator %q", spec.kind)
	}

	for _, p := range parts[1:] {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		key, value, ok := strings.Cut(p, "=")
		if !ok {
			return spec, fmt.Errorf("option %q must be key=value", p)
		}
		switch key {
		case "name":
			spec.name = value
		case "adapter":
			spec.adapter = value
		default:
			if spec.kind != KindWire {
				return spec, fmt.Errorf("%s does not accept option %q", spec.kind, key)
			}
			if spec.params == nil {
				spec.params = make(map[string]string)
			}
			spec.params[key] = value
		}
	}

	if spec.kind == KindWire && spec.adapter == "" {
		return spec, fmt.Errorf("wire requires an adapter")
	}
	if spec.kind != KindWire && spec.adapter != "" {
		return spec, fmt.Errorf("%s does not accept an adapter", spec.kind)
	}
	return spec, nil
}

// lowerFirst converts "MaxCount" to "maxCount".
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
