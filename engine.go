// Copyright 2026 The gesturekit Authors
// SPDX-License-Identifier: MIT

package gesture

import (
	"math"

	"github.com/rs/zerolog"
)

// Engine owns every Target and Gesture registered against it, drives their
// GestureRuntimes from RegisterTouch/RegisterMove, and tracks the FIFO of
// gestures that have completed but not yet been claimed through
// HandleFinishedGesture.
//
// An Engine is not safe for concurrent use: spec.md's concurrency model is
// a single caller serializing events onto one timeline, and the Logger
// field is the only place structured diagnostics are ever produced.
type Engine struct {
	targets  []*Target
	gestures []*Gesture
	runtimes []*GestureRuntime

	touch *TouchState

	moveTolerance *int32

	completionQueue []*Gesture

	// Logger receives a debug-level record for each completed gesture.
	// Resets triggered by an incompatible event are not logged. It
	// defaults to a no-op logger; set it to observe engine activity.
	Logger zerolog.Logger
}

// NewEngine returns an Engine with no targets or gestures and an empty
// touch group.
func NewEngine() *Engine {
	return &Engine{
		touch:  NewTouchState(),
		Logger: zerolog.Nop(),
	}
}

// NewTarget creates a rectangular spatial precondition owned by the
// engine and returns it for use with Action.SetTarget.
func (e *Engine) NewTarget(x, y, width, height int32) *Target {
	t := &Target{X: x, Y: y, Width: width, Height: height}
	e.targets = append(e.targets, t)
	return t
}

// NewGesture creates an empty Gesture owned by the engine, in declaration
// order, and returns it for configuration through its Add* methods. name
// may be empty.
func (e *Engine) NewGesture(name string) *Gesture {
	g := &Gesture{name: name}
	e.gestures = append(e.gestures, g)
	e.runtimes = append(e.runtimes, newGestureRuntime(g))
	return g
}

// SetMoveTolerance sets the engine-wide default per-event movement
// tolerance used by any Move action that does not override it at the
// Action or Gesture level.
func (e *Engine) SetMoveTolerance(tolerance int32) {
	e.moveTolerance = &tolerance
}

// RegisterTouch applies a finger press or release at the given slot and
// timestamp, advances every non-terminal gesture runtime, and returns the
// TouchChange the touch group produced.
//
// A timestamp older than any previously observed (a reordered or replayed
// event) has its geometry deltas clamped to zero for this call (spec.md
// §7): the slot state still updates, but Move/Rotate/Pinch accumulation
// sees no motion, since a delta computed against an out-of-order frame
// cannot be trusted.
func (e *Engine) RegisterTouch(timestamp uint32, slotID int32, mode TouchMode, x, y int32) TouchChange {
	prevCX, prevCY := e.touch.CenterX, e.touch.CenterY
	prevLastChangeTS := e.touch.LastChangeTS

	change, ok := e.touch.RegisterTouch(timestamp, slotID, mode, x, y)

	ev := dispatchEvent{
		kind:    evTouch,
		ts:      timestamp,
		touch:   change,
		touchOK: ok,
	}
	if timestamp >= prevLastChangeTS {
		ev.dCenterX = e.touch.CenterX - prevCX
		ev.dCenterY = e.touch.CenterY - prevCY
		ev.dAngleDeg = e.touch.MeanAngularDeltaRad * 180 / math.Pi
	}
	e.dispatch(ev)
	e.touch.PruneReleased()
	return change
}

// RegisterMove applies a positional delta to the given slot and
// timestamp, advances every non-terminal gesture runtime, and creates the
// slot pressed at (dx, dy) if it was not already known (spec.md §7).
//
// dirMask is accepted for interface symmetry with the declarative MoveDir
// an Action is configured with; it is advisory only, per SPEC_FULL.md's
// Open Question resolutions — (dx, dy) is the authoritative signal and
// dirMask is never consulted.
//
// As with RegisterTouch, an out-of-order timestamp has its geometry
// deltas clamped to zero for this call (spec.md §7).
func (e *Engine) RegisterMove(timestamp uint32, slotID int32, dirMask MoveDir, dx, dy int32) {
	_ = dirMask

	prevCX, prevCY := e.touch.CenterX, e.touch.CenterY
	prevLastChangeTS := e.touch.LastChangeTS
	e.touch.RegisterMove(timestamp, slotID, dx, dy)

	ev := dispatchEvent{
		kind:  evMove,
		ts:    timestamp,
		rawDX: dx,
		rawDY: dy,
	}
	if timestamp >= prevLastChangeTS {
		ev.dCenterX = e.touch.CenterX - prevCX
		ev.dCenterY = e.touch.CenterY - prevCY
		ev.dAngleDeg = e.touch.MeanAngularDeltaRad * 180 / math.Pi
	}
	e.dispatch(ev)
	e.touch.PruneReleased()
}

func (e *Engine) dispatch(ev dispatchEvent) {
	for i, g := range e.gestures {
		rt := e.runtimes[i]
		if rt.Terminal() {
			continue
		}
		toleranceOf := func(a *Action) int32 {
			return resolveTolerance(a, g, e.moveTolerance)
		}
		if rt.advance(ev, e.touch, toleranceOf) {
			e.completionQueue = append(e.completionQueue, g)
			e.Logger.Debug().Str("gesture", g.name).Msg("gesture completed")
		}
	}
}

// resolveTolerance applies the Action/Gesture/Engine override chain
// (spec.md's Open Question on move tolerance): the most specific non-nil
// override wins, defaulting to zero.
func resolveTolerance(a *Action, g *Gesture, engineDefault *int32) int32 {
	if a.moveTolerance != nil {
		return *a.moveTolerance
	}
	if g.moveTolerance != nil {
		return *g.moveTolerance
	}
	if engineDefault != nil {
		return *engineDefault
	}
	return 0
}

// GestureProgress returns g's overall progress in [0,1], or 0 if g is not
// owned by this engine.
func (e *Engine) GestureProgress(g *Gesture) float64 {
	idx := e.indexOfGesture(g)
	if idx < 0 {
		return 0
	}
	return e.runtimes[idx].Progress()
}

// ActionProgress returns a's progress: 1 if its gesture has already
// advanced past it (or completed), the in-flight ratio if it is the
// current action of its gesture, or 0 if it has not yet become current.
// Returns 0 if a is not owned by any gesture on this engine.
func (e *Engine) ActionProgress(a *Action) float64 {
	for i, g := range e.gestures {
		for idx, act := range g.actions {
			if act != a {
				continue
			}
			rt := e.runtimes[i]
			switch {
			case idx < rt.actionIndex || rt.Terminal():
				return 1
			case idx == rt.actionIndex:
				return rt.currentActionProgress()
			default:
				return 0
			}
		}
	}
	return 0
}

// CurrentAction returns g's current action, or nil if g is Terminal or
// not owned by this engine.
func (e *Engine) CurrentAction(g *Gesture) *Action {
	idx := e.indexOfGesture(g)
	if idx < 0 {
		return nil
	}
	return e.runtimes[idx].CurrentAction()
}

// ResetProgress resets g's runtime to its first action, discarding all
// accumulated progress. It is a no-op if g is not owned by this engine.
func (e *Engine) ResetProgress(g *Gesture) {
	idx := e.indexOfGesture(g)
	if idx < 0 {
		return
	}
	e.runtimes[idx].resetToStart()
}

// HandleFinishedGesture pops and returns the oldest completed-but-unclaimed
// gesture from the engine's FIFO, resetting its progress before returning
// it, or returns nil if no gesture is currently completed.
func (e *Engine) HandleFinishedGesture() *Gesture {
	if len(e.completionQueue) == 0 {
		return nil
	}
	g := e.completionQueue[0]
	e.completionQueue = e.completionQueue[1:]
	e.ResetProgress(g)
	return g
}

func (e *Engine) indexOfGesture(g *Gesture) int {
	for i, gg := range e.gestures {
		if gg == g {
			return i
		}
	}
	return -1
}

