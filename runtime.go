// Copyright 2026 The gesturekit Authors
// SPDX-License-Identifier: MIT

package gesture

import "math"

// eventCategory distinguishes the two kinds of input event the engine
// accepts. It drives the kind-compatibility check in §4.4: an Action only
// ever advances from events of its own matching category.
type eventCategory uint8

const (
	evTouch eventCategory = iota
	evMove
)

// dispatchEvent is the per-event context a GestureRuntime advances against.
// It is built by the Engine from a TouchState before/after comparison and
// is not exported; hosts only ever see RegisterTouch/RegisterMove.
type dispatchEvent struct {
	kind eventCategory
	ts   uint32

	touch   TouchChange
	touchOK bool

	rawDX, rawDY int32

	dCenterX, dCenterY float64
	dAngleDeg          float64
}

// GestureRuntime is the mutable evaluation state for one Gesture: which
// action is current, how far it has progressed, and the kind-specific
// accumulators behind that progress. Declarative state (the Gesture and
// its Actions) is never touched by a GestureRuntime; only this struct
// mutates as events arrive, so ResetProgress only ever has to zero this.
type GestureRuntime struct {
	gesture *Gesture

	actionIndex   int
	started       bool
	conditionMet  bool
	actionStartTS uint32
	lastEventTS   uint32

	touchMatches int32

	moveAccum   float64
	moveEntered bool

	rotateAccum float64

	pinchAccum       float64
	pinchStartRadius float64
	pinchStartSet    bool
}

func newGestureRuntime(g *Gesture) *GestureRuntime {
	return &GestureRuntime{gesture: g}
}

// Terminal reports whether the runtime has advanced through every action.
func (rt *GestureRuntime) Terminal() bool {
	return rt.actionIndex >= len(rt.gesture.actions)
}

// CurrentAction returns the action the runtime is presently evaluating,
// or nil if the runtime is Terminal.
func (rt *GestureRuntime) CurrentAction() *Action {
	if rt.Terminal() {
		return nil
	}
	return rt.gesture.actions[rt.actionIndex]
}

// Progress returns the gesture's overall progress in [0,1]: the fraction
// of actions already completed plus the current action's own progress.
// A Terminal runtime always reports 1.
func (rt *GestureRuntime) Progress() float64 {
	n := len(rt.gesture.actions)
	if n == 0 || rt.Terminal() {
		return 1
	}
	return (float64(rt.actionIndex) + rt.currentActionProgress()) / float64(n)
}

func (rt *GestureRuntime) resetToStart() {
	g := rt.gesture
	*rt = GestureRuntime{gesture: g}
}

func (rt *GestureRuntime) clearAccumulators() {
	rt.touchMatches = 0
	rt.moveAccum = 0
	rt.moveEntered = false
	rt.rotateAccum = 0
	rt.pinchAccum = 0
	rt.pinchStartSet = false
	rt.pinchStartRadius = 0
	rt.conditionMet = false
}

// advance evaluates the current action (and any zero-threshold actions it
// chains into within the same dispatch, per spec.md §4.4) against one
// input event. toleranceOf resolves a Move action's effective tolerance
// using the Action/Gesture/Engine override chain. It reports whether the
// gesture reached its terminal state during this call.
func (rt *GestureRuntime) advance(ev dispatchEvent, ts *TouchState, toleranceOf func(*Action) int32) (completedGesture bool) {
	rt.lastEventTS = ev.ts

	for i := 0; i <= len(rt.gesture.actions); i++ {
		if rt.Terminal() {
			return false
		}
		a := rt.CurrentAction()

		if !rt.started {
			rt.actionStartTS = ev.ts
			rt.started = true
			rt.conditionMet = initialConditionMet(a)
			if a.kind == ActionPinch && ts.CountPressed > 0 {
				rt.pinchStartRadius = ts.MeanRadius
				rt.pinchStartSet = true
			}
		}

		compatible := kindCompatible(a, ev)
		if compatible {
			rt.evaluateKind(a, ev, ts, toleranceOf)
		}

		elapsed := elapsedSince(rt.actionStartTS, ev.ts)
		var satisfied bool
		if a.kind == ActionDelay {
			satisfied = elapsed >= uint64(a.threshold)
		} else {
			satisfied = rt.conditionMet
		}
		timeOK := elapsed >= uint64(a.minDurationMS)

		if satisfied && timeOK {
			rt.actionIndex++
			rt.clearAccumulators()
			rt.started = false
			if rt.Terminal() {
				return true
			}
			continue
		}

		if !compatible && rt.wouldMatchLaterAction(ev) {
			rt.resetToStart()
		}
		return false
	}
	return false
}

// evaluateKind updates the accumulator(s) for a's kind given a compatible
// event, and sets conditionMet once the kind-specific completion rule
// (spec.md §4.4) is satisfied.
func (rt *GestureRuntime) evaluateKind(a *Action, ev dispatchEvent, ts *TouchState, toleranceOf func(*Action) int32) {
	switch a.kind {
	case ActionTouch:
		if !ev.touchOK {
			return
		}
		modeOK := (ev.touch.Mode == TouchDown && a.touchMode.HasDown()) ||
			(ev.touch.Mode == TouchUp && a.touchMode.HasUp())
		if !modeOK {
			return
		}
		if a.target != nil && !a.target.Contains(ev.touch.X, ev.touch.Y) {
			return
		}
		rt.touchMatches++
		if a.threshold <= 0 || rt.touchMatches >= a.threshold {
			rt.conditionMet = true
		}

	case ActionMove:
		if a.targetSet {
			if ts.CountPressed == 0 {
				return
			}
			if a.target.Contains(int32(ts.CenterX), int32(ts.CenterY)) {
				rt.moveEntered = true
				rt.conditionMet = true
			}
			return
		}
		tolerance := toleranceOf(a)
		mag := math.Hypot(ev.dCenterX, ev.dCenterY)
		if mag <= float64(tolerance) {
			return
		}
		if !signPermitted(a.moveDir, ev.dCenterX, ev.dCenterY) {
			return
		}
		rt.moveAccum += mag
		if a.threshold <= 0 || rt.moveAccum >= float64(a.threshold) {
			rt.conditionMet = true
		}

	case ActionRotate:
		if ev.dAngleDeg == 0 {
			return
		}
		clockwise := ev.dAngleDeg > 0
		allowed := (clockwise && a.rotateDir.HasCW()) || (!clockwise && a.rotateDir.HasCCW())
		if !allowed {
			return
		}
		rt.rotateAccum += math.Abs(ev.dAngleDeg)
		if a.threshold <= 0 || rt.rotateAccum >= float64(a.threshold) {
			rt.conditionMet = true
		}

	case ActionPinch:
		if ts.CountPressed == 0 {
			return
		}
		if !rt.pinchStartSet {
			rt.pinchStartRadius = ts.MeanRadius
			rt.pinchStartSet = true
		}
		diff := ts.MeanRadius - rt.pinchStartRadius
		var allowed bool
		switch {
		case diff > 0:
			allowed = a.pinchDir.HasOut()
		case diff < 0:
			allowed = a.pinchDir.HasIn()
		default:
			allowed = true
		}
		if !allowed {
			return
		}
		// Point difference from the start radius, not a path accumulation
		// like Rotate's rt.rotateAccum above: a pinch that reverses
		// direction can make this decrease, unlike Rotate's monotonic
		// +=. This follows spec.md §4.4's threshold comparison literally
		// (distance from the start radius), so it is kept as-is.
		rt.pinchAccum = math.Abs(diff)
		if a.threshold <= 0 || rt.pinchAccum >= float64(a.threshold) {
			rt.conditionMet = true
		}
	}
}

// currentActionProgress computes the in-flight [0,1] progress of the
// runtime's current action from its accumulator, clamped to just below 1
// when the completion condition has been met but min_duration has not yet
// elapsed (spec.md §4.4).
func (rt *GestureRuntime) currentActionProgress() float64 {
	a := rt.CurrentAction()
	if a == nil {
		return 1
	}

	var ratio float64
	switch a.kind {
	case ActionTouch:
		ratio = ratioOfInt(rt.touchMatches, a.threshold)
	case ActionMove:
		if a.targetSet {
			if rt.moveEntered {
				ratio = 1
			}
		} else {
			ratio = ratioOfFloat(rt.moveAccum, float64(a.threshold))
		}
	case ActionRotate:
		ratio = ratioOfFloat(rt.rotateAccum, float64(a.threshold))
	case ActionPinch:
		ratio = ratioOfFloat(rt.pinchAccum, float64(a.threshold))
	case ActionDelay:
		ratio = ratioOfFloat(float64(elapsedSince(rt.actionStartTS, rt.lastEventTS)), float64(a.threshold))
	}

	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio >= 1 && elapsedSince(rt.actionStartTS, rt.lastEventTS) < uint64(a.minDurationMS) {
		return 0.999
	}
	return ratio
}

// initialConditionMet reports whether an action is pre-completed the
// instant it becomes current: a zero-or-negative threshold is a completed
// precondition (spec.md §7), except for a Delay (always judged by elapsed
// time) and a target-mode Move (always judged by target entry).
func initialConditionMet(a *Action) bool {
	switch a.kind {
	case ActionTouch, ActionRotate, ActionPinch:
		return a.threshold <= 0
	case ActionMove:
		if a.targetSet {
			return false
		}
		return a.threshold <= 0
	default:
		return false
	}
}

// kindCompatible reports whether ev could possibly advance a, independent
// of thresholds, tolerances, or accumulated progress. It is used both to
// gate normal advancement and, for an incompatible event, to test whether
// a later action would have accepted it (spec.md §4.4's reset policy).
func kindCompatible(a *Action, ev dispatchEvent) bool {
	switch a.kind {
	case ActionTouch:
		return ev.kind == evTouch && ev.touchOK &&
			((ev.touch.Mode == TouchDown && a.touchMode.HasDown()) ||
				(ev.touch.Mode == TouchUp && a.touchMode.HasUp()))
	case ActionMove, ActionRotate, ActionPinch:
		return ev.kind == evMove
	case ActionDelay:
		if ev.kind == evTouch {
			return false
		}
		return ev.rawDX == 0 && ev.rawDY == 0
	default:
		return false
	}
}

func (rt *GestureRuntime) wouldMatchLaterAction(ev dispatchEvent) bool {
	for i := rt.actionIndex + 1; i < len(rt.gesture.actions); i++ {
		if kindCompatible(rt.gesture.actions[i], ev) {
			return true
		}
	}
	return false
}

// signPermitted reports whether a displacement's nonzero signed
// components are all allowed by dir. An axis with zero displacement is
// never a disqualifying factor.
func signPermitted(dir MoveDir, dx, dy float64) bool {
	if dx > 0 && !dir.HasPlusX() {
		return false
	}
	if dx < 0 && !dir.HasMinusX() {
		return false
	}
	if dy > 0 && !dir.HasPlusY() {
		return false
	}
	if dy < 0 && !dir.HasMinusY() {
		return false
	}
	return true
}

func elapsedSince(start, now uint32) uint64 {
	if now < start {
		return 0
	}
	return uint64(now - start)
}

func ratioOfInt(accum, threshold int32) float64 {
	if threshold <= 0 {
		return 1
	}
	return float64(accum) / float64(threshold)
}

func ratioOfFloat(accum, threshold float64) float64 {
	if threshold <= 0 {
		return 1
	}
	return accum / threshold
}
