// Copyright 2026 The gesturekit Authors
// SPDX-License-Identifier: MIT

package gesture

import "errors"

// Configuration errors, returned synchronously by the Action builder and
// configurator methods (spec.md §7). None of these are retried; a rejected
// call leaves the Action unchanged.
var (
	// ErrTargetNotApplicable is returned by SetTarget when called on a
	// Rotate, Pinch, or Delay action. Targets are only meaningful for
	// Touch and Move.
	ErrTargetNotApplicable = errors.New("gesture: target not applicable to this action kind")

	// ErrMoveThresholdTargetConflict is returned when SetThreshold is
	// called on a Move action that already has a target, or SetTarget is
	// called on a Move action that already has a threshold. A Move action
	// may specify one or the other, never both.
	ErrMoveThresholdTargetConflict = errors.New("gesture: move action cannot have both threshold and target")

	// ErrNonPositiveDelayDuration is returned by SetThreshold (and by
	// AddDelay) when a Delay action's duration is not a positive number of
	// milliseconds.
	ErrNonPositiveDelayDuration = errors.New("gesture: delay duration must be positive")
)
