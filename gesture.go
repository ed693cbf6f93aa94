// Copyright 2026 The gesturekit Authors
// SPDX-License-Identifier: MIT

package gesture

// Gesture is an ordered sequence of Actions plus per-gesture defaults. A
// Gesture owns its Actions; it may reference Targets owned by the Engine
// that created it. Gestures are built once during configuration and are
// immutable for the Engine's lifetime except through the Add*/tolerance
// configurators below, which a host is expected to call only before
// feeding input events.
type Gesture struct {
	name          string
	actions       []*Action
	moveTolerance *int32
}

// Name returns the gesture's declaration-time name, or the empty string
// if it was created without one (see Engine.NewGesture).
func (g *Gesture) Name() string { return g.name }

// Actions returns the gesture's ordered actions. The returned slice must
// not be mutated by the caller.
func (g *Gesture) Actions() []*Action { return g.actions }

// AddTouch appends a Touch action matching the given finger-state mask
// and returns it for further configuration.
func (g *Gesture) AddTouch(mode TouchMode) *Action {
	a := &Action{kind: ActionTouch, touchMode: mode}
	g.actions = append(g.actions, a)
	return a
}

// AddMove appends a Move action matching the given direction mask and
// returns it for further configuration.
func (g *Gesture) AddMove(dir MoveDir) *Action {
	a := &Action{kind: ActionMove, moveDir: dir}
	g.actions = append(g.actions, a)
	return a
}

// AddRotate appends a Rotate action matching the given direction mask and
// returns it for further configuration.
func (g *Gesture) AddRotate(dir RotateDir) *Action {
	a := &Action{kind: ActionRotate, rotateDir: dir}
	g.actions = append(g.actions, a)
	return a
}

// AddPinch appends a Pinch action matching the given direction mask and
// returns it for further configuration.
func (g *Gesture) AddPinch(dir PinchDir) *Action {
	a := &Action{kind: ActionPinch, pinchDir: dir}
	g.actions = append(g.actions, a)
	return a
}

// AddDelay appends a Delay action with the given duration in milliseconds
// and returns it for further configuration. Rejected with
// ErrNonPositiveDelayDuration if durationMS is not positive.
func (g *Gesture) AddDelay(durationMS uint32) (*Action, error) {
	a := &Action{kind: ActionDelay}
	if err := a.SetThreshold(int32(durationMS)); err != nil {
		return nil, err
	}
	g.actions = append(g.actions, a)
	return a, nil
}

// SetMoveTolerance sets this gesture's default per-event movement
// tolerance, used by any Move action belonging to it that does not
// override the tolerance itself. See Action.SetMoveTolerance and
// Engine.SetMoveTolerance for the full resolution order.
func (g *Gesture) SetMoveTolerance(tolerance int32) {
	g.moveTolerance = &tolerance
}
