// Copyright 2026 The gesturekit Authors
// SPDX-License-Identifier: MIT

package gesture

import "math"

// TouchSlot is the live state of a single finger. Slot IDs are assigned by
// the driver (the host's touch device) and remain constant for the
// lifetime of one press; they may be reused after a release.
type TouchSlot struct {
	SlotID      int32
	Pressed     bool
	X, Y        int32
	FirstDownTS uint32
	LastEventTS uint32

	prevAngle    float64
	hasPrevAngle bool
}

// TouchChange describes a single finger-state transition produced by
// RegisterTouch: a slot moving from released to pressed, or pressed to
// released. It is the unit of work a Touch action's threshold counts.
type TouchChange struct {
	SlotID int32
	Mode   TouchMode // TouchDown or TouchUp, never both
	X, Y   int32
}

// GeometryKind classifies the live touch group's spread using a 3x-dominance
// rule, generalized to however many slots are pressed. It is purely
// informational: no completion rule in this package consults it.
type GeometryKind uint8

const (
	// GeometryNone indicates fewer than two pressed slots.
	GeometryNone GeometryKind = iota

	// GeometryHorizontal indicates horizontal spread exceeds vertical by 3x.
	GeometryHorizontal

	// GeometryVertical indicates vertical spread exceeds horizontal by 3x.
	GeometryVertical

	// GeometryProportional indicates neither axis dominates.
	GeometryProportional
)

// String returns the geometry kind name for debugging.
func (k GeometryKind) String() string {
	switch k {
	case GeometryNone:
		return "None"
	case GeometryHorizontal:
		return "Horizontal"
	case GeometryVertical:
		return "Vertical"
	case GeometryProportional:
		return "Proportional"
	default:
		return "Unknown"
	}
}

// TouchState is the live, mutable touch-group state: one TouchSlot per
// currently-known slot, plus geometry derived from the pressed subset.
//
// When CountPressed is 0 the derived fields are left at whatever they last
// held (spec.md treats this as "no progress change" rather than as a reset
// to zero, so there is nothing to reset), except MeanAngularDeltaRad, which
// is set to 0 since no rotation is observed.
type TouchState struct {
	slots map[int32]*TouchSlot

	CenterX, CenterY float64
	MeanRadius       float64
	MeanAngleRad     float64

	// MeanAngularDeltaRad is the signed rotation observed during the most
	// recent recomputeGeometry call: the per-slot angular change relative
	// to the group center, averaged across slots that were pressed both
	// before and during this event. It is the quantity Rotate actions
	// accumulate from (see evaluateKind in runtime.go).
	//
	// It is computed from per-slot deltas rather than as the delta of
	// MeanAngleRad itself, because for exactly two pressed slots the two
	// per-slot vectors relative to the centroid are always antipodal, so
	// their unit-vector sum — and therefore MeanAngleRad's own
	// instant-to-instant change — is degenerate. Per-slot deltas have no
	// such degeneracy: a rigid two-finger rotation moves both slots by the
	// same angle about the center, and that angle survives the average.
	MeanAngularDeltaRad float64

	CountPressed int
	LastChangeTS uint32
}

// NewTouchState returns an empty TouchState with no slots pressed.
func NewTouchState() *TouchState {
	return &TouchState{slots: make(map[int32]*TouchSlot)}
}

// Slot returns the live state of a slot, or nil if unknown.
func (ts *TouchState) Slot(slotID int32) *TouchSlot {
	return ts.slots[slotID]
}

// RegisterTouch applies a finger press or release at the given slot and
// recomputes derived geometry. It reports the TouchChange produced and
// whether it represents a genuine state transition (ok is false if, e.g.,
// an already-pressed slot receives another Down).
//
// Released slots are NOT removed here; the engine removes them with
// PruneReleased after every gesture runtime has observed this event, so
// that geometry computed during this call still reflects the release.
func (ts *TouchState) RegisterTouch(timestamp uint32, slotID int32, mode TouchMode, x, y int32) (change TouchChange, ok bool) {
	change = TouchChange{SlotID: slotID, Mode: mode, X: x, Y: y}

	slot, exists := ts.slots[slotID]
	switch mode {
	case TouchDown:
		if !exists {
			ts.slots[slotID] = &TouchSlot{
				SlotID: slotID, Pressed: true, X: x, Y: y,
				FirstDownTS: timestamp, LastEventTS: timestamp,
			}
			ok = true
		} else {
			ok = !slot.Pressed
			if ok {
				slot.FirstDownTS = timestamp
			}
			slot.Pressed = true
			slot.X, slot.Y = x, y
			slot.LastEventTS = timestamp
		}
	case TouchUp:
		if !exists {
			ts.slots[slotID] = &TouchSlot{
				SlotID: slotID, Pressed: false, X: x, Y: y,
				FirstDownTS: timestamp, LastEventTS: timestamp,
			}
			ok = false
		} else {
			ok = slot.Pressed
			slot.Pressed = false
			slot.X, slot.Y = x, y
			slot.LastEventTS = timestamp
		}
	}

	ts.recomputeGeometry(timestamp)
	return change, ok
}

// RegisterMove applies a positional delta to a slot and recomputes derived
// geometry. It takes no direction mask: Engine.RegisterMove's dirMask is
// not passed down (see SPEC_FULL.md's Open Question resolutions: (dx, dy)
// is authoritative).
//
// If slotID is unknown (no prior Down), the slot is created pressed at the
// moved-to position, per spec.md §7.
func (ts *TouchState) RegisterMove(timestamp uint32, slotID int32, dx, dy int32) {
	slot, exists := ts.slots[slotID]
	if !exists {
		ts.slots[slotID] = &TouchSlot{
			SlotID: slotID, Pressed: true, X: dx, Y: dy,
			FirstDownTS: timestamp, LastEventTS: timestamp,
		}
	} else {
		slot.X += dx
		slot.Y += dy
		slot.LastEventTS = timestamp
	}
	ts.recomputeGeometry(timestamp)
}

// PruneReleased removes slots that are currently released. The engine
// calls this once per event, after every gesture runtime has advanced.
func (ts *TouchState) PruneReleased() {
	for id, s := range ts.slots {
		if !s.Pressed {
			delete(ts.slots, id)
		}
	}
}

// recomputeGeometry recomputes center, mean radius, and mean angle over
// currently-pressed slots. With zero pressed slots the previous values are
// left untouched (see the TouchState doc comment).
//
// LastChangeTS only ever advances: an out-of-order event (timestamp older
// than one already observed) must not pull it backwards, or the engine's
// §7 regression guard would lose track of how far the timeline has
// actually progressed and could misjudge a later, genuinely in-order
// event as regressed too.
func (ts *TouchState) recomputeGeometry(timestamp uint32) {
	if timestamp > ts.LastChangeTS {
		ts.LastChangeTS = timestamp
	}

	var n int
	var sumX, sumY float64
	for _, s := range ts.slots {
		if s.Pressed {
			n++
			sumX += float64(s.X)
			sumY += float64(s.Y)
		}
	}
	ts.CountPressed = n
	if n == 0 {
		ts.MeanAngularDeltaRad = 0
		return
	}

	cx := sumX / float64(n)
	cy := sumY / float64(n)

	var sumRadius, sumSin, sumCos float64
	var deltaSum float64
	var deltaCount int
	for _, s := range ts.slots {
		if !s.Pressed {
			continue
		}
		dx := float64(s.X) - cx
		dy := float64(s.Y) - cy
		sumRadius += math.Hypot(dx, dy)
		theta := math.Atan2(dy, dx)
		sumSin += math.Sin(theta)
		sumCos += math.Cos(theta)

		if s.hasPrevAngle {
			deltaSum += normalizeAngle(theta - s.prevAngle)
			deltaCount++
		}
		s.prevAngle = theta
		s.hasPrevAngle = true
	}

	ts.CenterX, ts.CenterY = cx, cy
	ts.MeanRadius = sumRadius / float64(n)
	if sumSin != 0 || sumCos != 0 {
		ts.MeanAngleRad = math.Atan2(sumSin, sumCos)
	}
	if deltaCount > 0 {
		ts.MeanAngularDeltaRad = deltaSum / float64(deltaCount)
	} else {
		ts.MeanAngularDeltaRad = 0
	}
}

// normalizeAngle wraps a radian difference into (-pi, pi] so a rotation
// crossing the atan2 branch cut still yields the short way around.
func normalizeAngle(diff float64) float64 {
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff <= -math.Pi {
		diff += 2 * math.Pi
	}
	return diff
}

// GeometryKind classifies the current spread of pressed slots using a
// 3x-dominance rule between the horizontal and vertical extents.
func (ts *TouchState) GeometryKind() GeometryKind {
	if ts.CountPressed < 2 {
		return GeometryNone
	}

	var minX, maxX, minY, maxY float64
	first := true
	for _, s := range ts.slots {
		if !s.Pressed {
			continue
		}
		x, y := float64(s.X), float64(s.Y)
		if first {
			minX, maxX, minY, maxY = x, x, y, y
			first = false
			continue
		}
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	spreadX := maxX - minX
	spreadY := maxY - minY
	switch {
	case spreadX > spreadY*3:
		return GeometryHorizontal
	case spreadY > spreadX*3:
		return GeometryVertical
	default:
		return GeometryProportional
	}
}
