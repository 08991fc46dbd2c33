package wcmp

// IsComponentConstructor reports whether v is a component constructor: a
// Class whose chain reaches BaseElement. It never panics; values that are
// not a Class (plain structs, funcs, primitives, nil) yield false.
func IsComponentConstructor(v any) bool {
	c, ok := v.(Class)
	if !ok || isNilClass(c) {
		return false
	}
	if inheritsBase(c) {
		return true
	}
	return walkChain(c)
}

// inheritsBase is the ordinary inheritance check over concrete super links.
// It gives up on the first placeholder, leaving that case to walkChain.
func inheritsBase(c Class) bool {
	for !isNilClass(c) {
		switch x := c.(type) {
		case *baseElement:
			return true
		case *Component:
			c = x.super
		default:
			return false
		}
	}
	return false
}

// walkChain climbs the chain resolving placeholders one step at a time. A
// placeholder that resolves to itself denotes the base type. Cycles built
// through placeholders terminate with false.
func walkChain(c Class) bool {
	seen := make(map[Class]struct{})
	current := c
	for !isNilClass(current) {
		if _, ok := seen[current]; ok {
			return false
		}
		seen[current] = struct{}{}

		switch x := current.(type) {
		case *Placeholder:
			resolved := x.Resolve()
			if resolved == Class(x) {
				return true
			}
			current = resolved
		case *baseElement:
			return true
		case *Component:
			current = x.super
		default:
			return false
		}
	}
	return false
}

// isNilClass catches both untyped nil and typed nil pointers.
func isNilClass(c Class) bool {
	switch x := c.(type) {
	case nil:
		return true
	case *Component:
		return x == nil
	case *Placeholder:
		return x == nil
	case *baseElement:
		return x == nil
	}
	return false
}
