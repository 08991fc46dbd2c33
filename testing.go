package wcmp

import (
	"bytes"
	"context"
	"strings"
)

// TestResult holds the result of rendering a component for testing.
//
// Provides convenience methods for asserting on HTML content and the
// component state after the render.
type TestResult struct {
	HTML    string
	Element *HostElement
	State   map[string]any
}

// TestRender creates an element for ctor, assigns props through its bridge,
// connects it and renders it once.
//
// Use this for unit tests of rendering logic. Props must be public fields of
// the component; anything else fails with ErrNotExposed, exactly as it would
// for a caller outside the component.
//
//	result, err := wcmp.TestRender(reg, Counter, map[string]any{"label": "hits"})
//	if !result.HTMLContains("hits") {
//	    t.Fatal("missing expected content")
//	}
func TestRender(reg *Registry, ctor any, props map[string]any) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), reg, ctor, props)
}

// TestRenderWithContext is TestRender with a caller-supplied context.
//
// Use this when hooks read values from context:
//
//	ctx := context.WithValue(context.Background(), userKey, testUser)
//	result, err := wcmp.TestRenderWithContext(ctx, reg, Profile, nil)
func TestRenderWithContext(ctx context.Context, reg *Registry, ctor any, props map[string]any) (*TestResult, error) {
	el, err := reg.CreateElement("x-test", ctor)
	if err != nil {
		return nil, err
	}

	for name, v := range props {
		if err := el.Set(name, v); err != nil {
			return nil, err
		}
	}

	if err := el.Connect(ctx); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := el.Render(ctx, &buf); err != nil {
		return nil, err
	}

	return &TestResult{
		HTML:    buf.String(),
		Element: el,
		State:   el.VM().State(),
	}, nil
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}
