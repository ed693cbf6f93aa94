// Copyright 2026 The gesturekit Authors
// SPDX-License-Identifier: MIT

// Package replay decodes a YAML script of targets, gestures, and input
// events, and drives a gesture.Engine from it. It exists so the engine can
// be exercised from recorded or hand-written fixtures without a live touch
// source.
package replay

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	gesture "github.com/tinytouch/gesturekit"
)

// TargetConfig describes one named rectangular precondition.
type TargetConfig struct {
	Name   string `yaml:"name"`
	X      int32  `yaml:"x"`
	Y      int32  `yaml:"y"`
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
}

// ActionConfig describes one step of a gesture.
type ActionConfig struct {
	Kind string `yaml:"kind"`

	// Touch
	Modes []string `yaml:"modes,omitempty"`

	// Move/Rotate/Pinch
	Dirs []string `yaml:"dirs,omitempty"`

	Threshold     int32  `yaml:"threshold,omitempty"`
	DurationMS    uint32 `yaml:"durationMS,omitempty"`
	MinDurationMS uint32 `yaml:"minDurationMS,omitempty"`
	MoveTolerance *int32 `yaml:"moveTolerance,omitempty"`
	TargetRef     string `yaml:"targetRef,omitempty"`
}

// GestureConfig describes one named, ordered sequence of actions.
type GestureConfig struct {
	Name          string         `yaml:"name"`
	MoveTolerance *int32         `yaml:"moveTolerance,omitempty"`
	Actions       []ActionConfig `yaml:"actions"`
}

// EventConfig describes one input event to feed the engine during replay.
type EventConfig struct {
	TimestampMS uint32 `yaml:"timestampMS"`
	Type        string `yaml:"type"` // "touch" or "move"
	Slot        int32  `yaml:"slot"`

	// touch
	Mode string `yaml:"mode,omitempty"`
	X    int32  `yaml:"x,omitempty"`
	Y    int32  `yaml:"y,omitempty"`

	// move
	DX int32 `yaml:"dx,omitempty"`
	DY int32 `yaml:"dy,omitempty"`
}

// Script is the top-level document decoded from a replay file: the engine
// configuration plus the event timeline to drive it with.
type Script struct {
	MoveTolerance *int32          `yaml:"moveTolerance,omitempty"`
	Targets       []TargetConfig  `yaml:"targets,omitempty"`
	Gestures      []GestureConfig `yaml:"gestures"`
	Events        []EventConfig   `yaml:"events"`
}

// LoadScript reads and decodes a Script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return &s, nil
}

// Build constructs an Engine from the script's targets and gestures. Each
// gesture is registered in a TemplateRegistry under its own name and
// instantiated onto the engine through that registry (see
// gesture.TemplateRegistry); the registry is local to Build and is not
// returned. The returned slice preserves gesture declaration order,
// matching s.Gestures.
func Build(s *Script) (*gesture.Engine, []*gesture.Gesture, error) {
	e := gesture.NewEngine()
	if s.MoveTolerance != nil {
		e.SetMoveTolerance(*s.MoveTolerance)
	}

	targets := make(map[string]*gesture.Target, len(s.Targets))
	for _, tc := range s.Targets {
		targets[tc.Name] = e.NewTarget(tc.X, tc.Y, tc.Width, tc.Height)
	}

	registry := gesture.NewTemplateRegistry()
	var buildErr error
	for _, gc := range s.Gestures {
		gc := gc
		registry.Register(gc.Name, func(e *gesture.Engine) *gesture.Gesture {
			g := e.NewGesture(gc.Name)
			if gc.MoveTolerance != nil {
				g.SetMoveTolerance(*gc.MoveTolerance)
			}
			for i, ac := range gc.Actions {
				if err := addAction(g, ac, targets); err != nil && buildErr == nil {
					buildErr = fmt.Errorf("gesture %q action %d: %w", gc.Name, i, err)
				}
			}
			return g
		})
	}

	gestures := make([]*gesture.Gesture, 0, len(s.Gestures))
	for _, gc := range s.Gestures {
		g, ok := registry.Build(gc.Name, e)
		if !ok {
			return nil, nil, fmt.Errorf("gesture %q: template not registered", gc.Name)
		}
		if buildErr != nil {
			return nil, nil, buildErr
		}
		gestures = append(gestures, g)
	}

	return e, gestures, nil
}

func addAction(g *gesture.Gesture, ac ActionConfig, targets map[string]*gesture.Target) error {
	switch strings.ToLower(ac.Kind) {
	case "touch":
		a := g.AddTouch(parseTouchMode(ac.Modes))
		a.SetDuration(ac.MinDurationMS)
		return configureThresholdOrTarget(a, ac, targets)
	case "move":
		a := g.AddMove(parseMoveDir(ac.Dirs))
		if ac.MoveTolerance != nil {
			a.SetMoveTolerance(*ac.MoveTolerance)
		}
		a.SetDuration(ac.MinDurationMS)
		return configureThresholdOrTarget(a, ac, targets)
	case "rotate":
		a := g.AddRotate(parseRotateDir(ac.Dirs))
		a.SetDuration(ac.MinDurationMS)
		return a.SetThreshold(ac.Threshold)
	case "pinch":
		a := g.AddPinch(parsePinchDir(ac.Dirs))
		a.SetDuration(ac.MinDurationMS)
		return a.SetThreshold(ac.Threshold)
	case "delay":
		a, err := g.AddDelay(ac.DurationMS)
		if err != nil {
			return err
		}
		a.SetDuration(ac.MinDurationMS)
		return nil
	default:
		return fmt.Errorf("unknown action kind %q", ac.Kind)
	}
}

// configureThresholdOrTarget applies ac's target (Touch or Move) if set,
// otherwise its threshold. Duration is set by the caller beforehand since
// it applies regardless of which branch runs.
func configureThresholdOrTarget(a *gesture.Action, ac ActionConfig, targets map[string]*gesture.Target) error {
	if ac.TargetRef != "" {
		t, ok := targets[ac.TargetRef]
		if !ok {
			return fmt.Errorf("unknown targetRef %q", ac.TargetRef)
		}
		return a.SetTarget(t)
	}
	return a.SetThreshold(ac.Threshold)
}

func parseTouchMode(names []string) gesture.TouchMode {
	var m gesture.TouchMode
	for _, n := range names {
		switch strings.ToLower(n) {
		case "up":
			m |= gesture.TouchUp
		case "down":
			m |= gesture.TouchDown
		}
	}
	return m
}

func parseMoveDir(names []string) gesture.MoveDir {
	var d gesture.MoveDir
	for _, n := range names {
		switch strings.ToLower(n) {
		case "+x", "plusx", "right":
			d |= gesture.MovePlusX
		case "-x", "minusx", "left":
			d |= gesture.MoveMinusX
		case "+y", "plusy", "down":
			d |= gesture.MovePlusY
		case "-y", "minusy", "up":
			d |= gesture.MoveMinusY
		}
	}
	return d
}

func parseRotateDir(names []string) gesture.RotateDir {
	var d gesture.RotateDir
	for _, n := range names {
		switch strings.ToLower(n) {
		case "cw", "clockwise":
			d |= gesture.RotateCW
		case "ccw", "counterclockwise":
			d |= gesture.RotateCCW
		}
	}
	return d
}

func parsePinchDir(names []string) gesture.PinchDir {
	var d gesture.PinchDir
	for _, n := range names {
		switch strings.ToLower(n) {
		case "in":
			d |= gesture.PinchIn
		case "out":
			d |= gesture.PinchOut
		}
	}
	return d
}

// ParseTouchModeForEvent resolves a single event's touch mode string.
func ParseTouchModeForEvent(mode string) (gesture.TouchMode, error) {
	switch strings.ToLower(mode) {
	case "up":
		return gesture.TouchUp, nil
	case "down":
		return gesture.TouchDown, nil
	default:
		return 0, fmt.Errorf("unknown touch mode %q", mode)
	}
}
