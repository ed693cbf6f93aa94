// Copyright 2026 The gesturekit Authors
// SPDX-License-Identifier: MIT

package gesture

import "testing"

func tapBuilder(threshold int32) GestureBuilder {
	return func(e *Engine) *Gesture {
		g := e.NewGesture("tap")
		touch := g.AddTouch(TouchDown)
		touch.SetThreshold(threshold)
		return g
	}
}

func TestTemplateRegistry_RegisterAndBuild(t *testing.T) {
	r := NewTemplateRegistry()
	r.Register("tap", tapBuilder(1))

	e := NewEngine()
	g, ok := r.Build("tap", e)
	if !ok {
		t.Fatal("Build(tap) ok = false, want true")
	}
	if g.Name() != "tap" {
		t.Errorf("Name() = %q, want %q", g.Name(), "tap")
	}
	if len(g.Actions()) != 1 {
		t.Errorf("Actions() length = %d, want 1", len(g.Actions()))
	}
}

func TestTemplateRegistry_Build_NotFound(t *testing.T) {
	r := NewTemplateRegistry()

	g, ok := r.Build("nonexistent", NewEngine())
	if ok || g != nil {
		t.Errorf("Build(nonexistent) = %v, %v, want nil, false", g, ok)
	}
}

func TestTemplateRegistry_Has(t *testing.T) {
	r := NewTemplateRegistry()

	if r.Has("tap") {
		t.Error("Has(tap) = true before registration")
	}

	r.Register("tap", tapBuilder(1))

	if !r.Has("tap") {
		t.Error("Has(tap) = false after registration")
	}
}

func TestTemplateRegistry_Unregister(t *testing.T) {
	r := NewTemplateRegistry()
	r.Register("tap", tapBuilder(1))

	r.Unregister("tap")

	if r.Has("tap") {
		t.Error("Has(tap) = true after unregister")
	}
}

func TestTemplateRegistry_Available(t *testing.T) {
	r := NewTemplateRegistry()

	r.Register("tap", tapBuilder(1))
	r.Register("double-tap", tapBuilder(2))

	available := r.Available()
	if len(available) != 2 {
		t.Errorf("Available() length = %d, want 2", len(available))
	}

	hasTap, hasDouble := false, false
	for _, name := range available {
		if name == "tap" {
			hasTap = true
		}
		if name == "double-tap" {
			hasDouble = true
		}
	}
	if !hasTap || !hasDouble {
		t.Errorf("Available() = %v, want [tap, double-tap]", available)
	}
}

func TestTemplateRegistry_Count(t *testing.T) {
	r := NewTemplateRegistry()

	if r.Count() != 0 {
		t.Errorf("Count() on empty = %d, want 0", r.Count())
	}

	r.Register("tap", tapBuilder(1))
	r.Register("double-tap", tapBuilder(2))

	if r.Count() != 2 {
		t.Errorf("Count() = %d, want 2", r.Count())
	}
}

func TestTemplateRegistry_Replace(t *testing.T) {
	r := NewTemplateRegistry()

	r.Register("tap", tapBuilder(1))
	r.Register("tap", tapBuilder(5))

	e := NewEngine()
	g, _ := r.Build("tap", e)
	if got := g.Actions()[0].Threshold(); got != 5 {
		t.Errorf("Threshold() after replace = %d, want 5", got)
	}
}
