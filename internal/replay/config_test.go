// Copyright 2026 The gesturekit Authors
// SPDX-License-Identifier: MIT

package replay

import (
	"testing"

	gesture "github.com/tinytouch/gesturekit"
)

func TestBuild_TwoFingerTap(t *testing.T) {
	s := &Script{
		Gestures: []GestureConfig{
			{
				Name: "two-finger-tap",
				Actions: []ActionConfig{
					{Kind: "touch", Modes: []string{"down"}, Threshold: 2},
				},
			},
		},
	}

	e, gestures, err := Build(s)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(gestures) != 1 {
		t.Fatalf("len(gestures) = %d, want 1", len(gestures))
	}

	e.RegisterTouch(0, 1, gesture.TouchDown, 0, 0)
	e.RegisterTouch(0, 2, gesture.TouchDown, 10, 10)

	if got := e.GestureProgress(gestures[0]); got != 1 {
		t.Errorf("GestureProgress() = %f, want 1", got)
	}
}

func TestBuild_UnknownActionKind(t *testing.T) {
	s := &Script{
		Gestures: []GestureConfig{
			{Name: "bad", Actions: []ActionConfig{{Kind: "wiggle"}}},
		},
	}
	if _, _, err := Build(s); err == nil {
		t.Error("Build() with unknown action kind returned nil error")
	}
}

func TestBuild_UnknownTargetRef(t *testing.T) {
	s := &Script{
		Gestures: []GestureConfig{
			{Name: "bad", Actions: []ActionConfig{{Kind: "touch", TargetRef: "nope"}}},
		},
	}
	if _, _, err := Build(s); err == nil {
		t.Error("Build() with unknown targetRef returned nil error")
	}
}

func TestParseTouchModeForEvent(t *testing.T) {
	if _, err := ParseTouchModeForEvent("sideways"); err == nil {
		t.Error("ParseTouchModeForEvent() with invalid mode returned nil error")
	}
	mode, err := ParseTouchModeForEvent("down")
	if err != nil {
		t.Fatalf("ParseTouchModeForEvent() error = %v", err)
	}
	if mode != gesture.TouchDown {
		t.Errorf("ParseTouchModeForEvent(\"down\") = %v, want TouchDown", mode)
	}
}
