// Copyright 2026 The gesturekit Authors
// SPDX-License-Identifier: MIT

// Command gesturereplay drives an Engine from a YAML script of targets,
// gestures, and timestamped input events, and reports each gesture's
// progress and completion as the events are fed in.
//
// Usage:
//
//	gesturereplay -script=script.yaml
//	gesturereplay -v
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	gesture "github.com/tinytouch/gesturekit"
	"github.com/tinytouch/gesturekit/internal/replay"
)

const version = "gesturereplay version 1.0.0"

func main() {
	var scriptPath string
	flag.StringVar(&scriptPath, "script", "script.yaml", "Path to the replay script")
	flag.StringVar(&scriptPath, "s", "script.yaml", "Path to the replay script (alias)")
	verbose := flag.Bool("verbose", false, "Log every event, not just completions")
	verFlag := flag.Bool("v", false, "Print version and exit")
	flag.Parse()

	if *verFlag {
		fmt.Println(version)
		return
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	if err := run(scriptPath, *verbose, log); err != nil {
		log.Error().Err(err).Msg("replay failed")
		os.Exit(1)
	}
}

func run(scriptPath string, verbose bool, log zerolog.Logger) error {
	script, err := replay.LoadScript(scriptPath)
	if err != nil {
		return err
	}

	engine, gestures, err := replay.Build(script)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}
	engine.Logger = log

	log.Info().Int("gestures", len(gestures)).Int("events", len(script.Events)).Msg("script loaded")

	for i, ev := range script.Events {
		if err := applyEvent(engine, ev); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		if verbose {
			logProgress(log, gestures, engine)
		}
		for {
			finished := engine.HandleFinishedGesture()
			if finished == nil {
				break
			}
			log.Info().Str("gesture", finished.Name()).Uint32("at_ms", ev.TimestampMS).Msg("completed")
		}
	}

	if !verbose {
		logProgress(log, gestures, engine)
	}
	return nil
}

func applyEvent(engine *gesture.Engine, ev replay.EventConfig) error {
	switch ev.Type {
	case "touch":
		mode, err := replay.ParseTouchModeForEvent(ev.Mode)
		if err != nil {
			return err
		}
		engine.RegisterTouch(ev.TimestampMS, ev.Slot, mode, ev.X, ev.Y)
	case "move":
		engine.RegisterMove(ev.TimestampMS, ev.Slot, 0, ev.DX, ev.DY)
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	return nil
}

func logProgress(log zerolog.Logger, gestures []*gesture.Gesture, engine *gesture.Engine) {
	out := make([]gesture.GestureProgress, len(gestures))
	engine.FillProgressArray(out)
	for _, gp := range out {
		log.Debug().Str("gesture", gp.Gesture.Name()).Float64("progress", gp.Progress).Msg("progress")
	}
}
