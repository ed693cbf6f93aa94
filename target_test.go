// Copyright 2026 The gesturekit Authors
// SPDX-License-Identifier: MIT

package gesture

import "testing"

func TestTarget_Contains(t *testing.T) {
	target := Target{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name   string
		px, py int32
		want   bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner, inclusive", 10, 20, true},
		{"bottom-right corner, exclusive", 110, 70, false},
		{"just inside bottom-right", 109, 69, true},
		{"left of target", 9, 40, false},
		{"above target", 50, 19, false},
		{"right of target", 110, 40, false},
		{"below target", 50, 70, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := target.Contains(tt.px, tt.py); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}
