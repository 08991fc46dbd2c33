// Package wcmp is the class-definition core of a web component framework
// for Go, rendering through Templ templates.
//
// A component class is a *Component built with Extend. Classes form a
// single-inheritance chain that must bottom out at BaseElement; a
// superclass may also be a Placeholder whose target is bound later, which
// is how mutually dependent components are declared.
//
// # Core Concepts
//
// Authors write plain structs embedding Element and annotate their members
// with wc struct tags:
//
//	type Counter struct {
//	    wcmp.Element
//	    Label string `wc:"api"`
//	    Count int    `wc:"track"`
//	    Todos []Todo `wc:"wire,adapter=getTodos,userId=$user"`
//	}
//
// Public members ("api") form the element's external surface. Tracked
// fields are reactive but private. Wired members are provisioned by an
// adapter.
//
// # Definitions
//
// A ComponentDef is the merged view of a class and all of its ancestors:
// public props and methods (ancestor-first), wire declarations, observed
// fields, lifecycle hooks, the template and the Bridge installed on host
// elements. Definitions are built lazily by a Registry and cached per
// class:
//
//	reg := wcmp.NewRegistry(wcmp.WithLogger(log))
//	def, err := reg.GetComponentDef(CounterClass)
//
// Each class's definition is built at most once; concurrent first calls
// share a single build. Failed builds are not cached.
//
// Values that are not component classes are rejected before any metadata
// is read:
//
//	_, err := reg.GetComponentDef(42)
//	wcmp.IsNotComponent(err) // true
//
// # Host Elements
//
// CreateElement attaches a new VM to a HostElement and installs the
// definition's bridge. From the outside only the bridge's members are
// reachable:
//
//	el, _ := reg.CreateElement("x-counter", CounterClass)
//	el.Set("label", "hits")     // public field
//	el.Set("count", 3)          // ErrNotExposed
//	el.Call(ctx, "reset")       // public method
//
// # Code Generation
//
// Run 'wcmp generate' to lower wc tags and //wc: directives into a
// class variable and a Register function per component. See
// lib/generator.
//
// # Development Mode
//
// WithDevMode enables stricter diagnostics: a circular or unresolved
// placeholder chain is reported with its class name, and a class's
// prototype is frozen once its definition is built.
package wcmp
