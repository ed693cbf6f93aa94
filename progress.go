// Copyright 2026 The gesturekit Authors
// SPDX-License-Identifier: MIT

package gesture

import "sort"

// GestureProgress pairs a Gesture with its current overall Progress, as
// produced by Engine.FillProgressArray.
type GestureProgress struct {
	Gesture  *Gesture
	Progress float64
}

// FillProgressArray writes the engine's gestures into out, sorted by
// descending progress with ties broken by declaration order (the order
// NewGesture was called), and returns the highest progress value written.
// At most len(out) entries are written; if the engine owns more gestures
// than out can hold, the lowest-progress tail is simply not copied.
func (e *Engine) FillProgressArray(out []GestureProgress) float64 {
	all := make([]GestureProgress, len(e.gestures))
	for i, g := range e.gestures {
		all[i] = GestureProgress{Gesture: g, Progress: e.runtimes[i].Progress()}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Progress > all[j].Progress
	})

	n := len(out)
	if n > len(all) {
		n = len(all)
	}
	copy(out[:n], all[:n])

	if n == 0 {
		return 0
	}
	return all[0].Progress
}
