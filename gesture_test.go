// Copyright 2026 The gesturekit Authors
// SPDX-License-Identifier: MIT

package gesture

import "testing"

func TestGesture_AddActions(t *testing.T) {
	g := &Gesture{}
	g.AddTouch(TouchDown)
	g.AddMove(MovePlusX)
	g.AddRotate(RotateCW)
	g.AddPinch(PinchOut)
	if _, err := g.AddDelay(100); err != nil {
		t.Fatalf("AddDelay() error = %v", err)
	}

	actions := g.Actions()
	want := []ActionKind{ActionTouch, ActionMove, ActionRotate, ActionPinch, ActionDelay}
	if len(actions) != len(want) {
		t.Fatalf("Actions() length = %d, want %d", len(actions), len(want))
	}
	for i, k := range want {
		if actions[i].Kind() != k {
			t.Errorf("Actions()[%d].Kind() = %v, want %v", i, actions[i].Kind(), k)
		}
	}
}

func TestGesture_AddDelay_RejectsNonPositive(t *testing.T) {
	g := &Gesture{}
	if _, err := g.AddDelay(0); err == nil {
		t.Error("AddDelay(0) error = nil, want non-nil")
	}
	if len(g.Actions()) != 0 {
		t.Errorf("Actions() length = %d after rejected AddDelay, want 0", len(g.Actions()))
	}
}

func TestGesture_Name(t *testing.T) {
	g := &Gesture{name: "two-finger-tap"}
	if g.Name() != "two-finger-tap" {
		t.Errorf("Name() = %q, want %q", g.Name(), "two-finger-tap")
	}
}

func TestGesture_SetMoveTolerance(t *testing.T) {
	g := &Gesture{}
	a := g.AddMove(MovePlusX)

	if got := resolveTolerance(a, g, nil); got != 0 {
		t.Errorf("resolveTolerance() before SetMoveTolerance = %d, want 0", got)
	}

	g.SetMoveTolerance(8)
	if got := resolveTolerance(a, g, nil); got != 8 {
		t.Errorf("resolveTolerance() = %d, want 8", got)
	}

	a.SetMoveTolerance(3)
	if got := resolveTolerance(a, g, nil); got != 3 {
		t.Errorf("resolveTolerance() with action override = %d, want 3", got)
	}
}
