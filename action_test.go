// Copyright 2026 The gesturekit Authors
// SPDX-License-Identifier: MIT

package gesture

import (
	"errors"
	"testing"
)

func TestTouchMode_Has(t *testing.T) {
	mode := TouchDown | TouchUp
	if !mode.HasDown() {
		t.Error("HasDown() = false, want true")
	}
	if !mode.HasUp() {
		t.Error("HasUp() = false, want true")
	}
	if (TouchDown).HasUp() {
		t.Error("TouchDown.HasUp() = true, want false")
	}
}

func TestMoveDir_Has(t *testing.T) {
	dir := MovePlusX | MoveMinusY
	if !dir.HasPlusX() || !dir.HasMinusY() {
		t.Errorf("dir = %v, want PlusX and MinusY set", dir)
	}
	if dir.HasPlusY() || dir.HasMinusX() {
		t.Errorf("dir = %v, want PlusY and MinusX unset", dir)
	}
}

func TestRotateDir_Has(t *testing.T) {
	if !RotateCW.HasCW() || RotateCW.HasCCW() {
		t.Error("RotateCW mask check failed")
	}
}

func TestPinchDir_Has(t *testing.T) {
	if !PinchOut.HasOut() || PinchOut.HasIn() {
		t.Error("PinchOut mask check failed")
	}
}

func TestActionKind_String(t *testing.T) {
	tests := []struct {
		kind ActionKind
		want string
	}{
		{ActionTouch, "Touch"},
		{ActionMove, "Move"},
		{ActionRotate, "Rotate"},
		{ActionPinch, "Pinch"},
		{ActionDelay, "Delay"},
		{ActionKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestAction_SetThreshold_MoveTargetConflict(t *testing.T) {
	g := &Gesture{}
	a := g.AddMove(MovePlusX)
	target := &Target{Width: 10, Height: 10}

	if err := a.SetTarget(target); err != nil {
		t.Fatalf("SetTarget() error = %v, want nil", err)
	}
	if err := a.SetThreshold(50); !errors.Is(err, ErrMoveThresholdTargetConflict) {
		t.Errorf("SetThreshold() after SetTarget error = %v, want ErrMoveThresholdTargetConflict", err)
	}
}

func TestAction_SetTarget_MoveThresholdConflict(t *testing.T) {
	g := &Gesture{}
	a := g.AddMove(MovePlusX)

	if err := a.SetThreshold(50); err != nil {
		t.Fatalf("SetThreshold() error = %v, want nil", err)
	}
	if err := a.SetTarget(&Target{}); !errors.Is(err, ErrMoveThresholdTargetConflict) {
		t.Errorf("SetTarget() after SetThreshold error = %v, want ErrMoveThresholdTargetConflict", err)
	}
}

func TestAction_SetTarget_NotApplicable(t *testing.T) {
	g := &Gesture{}
	for _, a := range []*Action{g.AddRotate(RotateCW), g.AddPinch(PinchOut)} {
		if err := a.SetTarget(&Target{}); !errors.Is(err, ErrTargetNotApplicable) {
			t.Errorf("%s.SetTarget() error = %v, want ErrTargetNotApplicable", a.Kind(), err)
		}
	}
}

func TestAction_SetThreshold_NonPositiveDelay(t *testing.T) {
	g := &Gesture{}
	a := &Action{kind: ActionDelay}
	g.actions = append(g.actions, a)

	if err := a.SetThreshold(0); !errors.Is(err, ErrNonPositiveDelayDuration) {
		t.Errorf("SetThreshold(0) error = %v, want ErrNonPositiveDelayDuration", err)
	}
	if err := a.SetThreshold(-5); !errors.Is(err, ErrNonPositiveDelayDuration) {
		t.Errorf("SetThreshold(-5) error = %v, want ErrNonPositiveDelayDuration", err)
	}
	if err := a.SetThreshold(500); err != nil {
		t.Errorf("SetThreshold(500) error = %v, want nil", err)
	}
}

func TestAction_Getters(t *testing.T) {
	g := &Gesture{}
	target := &Target{Width: 5, Height: 5}
	a := g.AddTouch(TouchDown)
	if err := a.SetTarget(target); err != nil {
		t.Fatalf("SetTarget() error = %v", err)
	}
	a.SetDuration(250)

	if a.Kind() != ActionTouch {
		t.Errorf("Kind() = %v, want ActionTouch", a.Kind())
	}
	if a.Target() != target {
		t.Errorf("Target() = %v, want %v", a.Target(), target)
	}
	if a.MinDuration() != 250 {
		t.Errorf("MinDuration() = %d, want 250", a.MinDuration())
	}
}
