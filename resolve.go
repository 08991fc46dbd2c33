package wcmp

// superOf returns the nearest valid superclass of ctor. name is the display
// name used in errors; it defaults to the class's intrinsic name.
//
// A placeholder super gets exactly one resolution step. If it resolves to
// itself the chain has reached the base type and BaseElement is returned.
func superOf(ctor *Component, name string, devMode bool) (Class, error) {
	if name == "" {
		name = ctor.Name()
	}

	super := ctor.super
	if isNilClass(super) {
		return nil, &AncestryError{Class: name, Err: ErrInvalidAncestry}
	}

	p, ok := super.(*Placeholder)
	if !ok {
		return super, nil
	}

	resolved := p.Resolve()
	if isNilClass(resolved) {
		if devMode {
			return nil, &AncestryError{Class: name, Err: ErrUnresolvedPlaceholder}
		}
		return nil, &AncestryError{Class: name, Err: ErrInvalidAncestry}
	}
	if resolved == Class(p) {
		return BaseElement, nil
	}
	return resolved, nil
}
