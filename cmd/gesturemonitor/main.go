// Copyright 2026 The gesturekit Authors
// SPDX-License-Identifier: MIT

// Command gesturemonitor plays a YAML replay script through an Engine one
// event per tick and renders each gesture's live progress as a bar chart,
// with a scrolling feed of completed gestures below it.
//
// Usage:
//
//	gesturemonitor -script=script.yaml
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gesture "github.com/tinytouch/gesturekit"
	"github.com/tinytouch/gesturekit/internal/replay"
)

const tickInterval = 200 * time.Millisecond

type theme struct {
	headerBg lipgloss.Color
	headerFg lipgloss.Color
	barFill  lipgloss.Color
	barEmpty lipgloss.Color
	feedFg   lipgloss.Color
}

func defaultTheme() theme {
	return theme{
		headerBg: lipgloss.Color("#5C5C5C"),
		headerFg: lipgloss.Color("#FFFFFF"),
		barFill:  lipgloss.Color("#00ADD8"),
		barEmpty: lipgloss.Color("#3C3C3C"),
		feedFg:   lipgloss.Color("#AD58B4"),
	}
}

type styles struct {
	header lipgloss.Style
	name   lipgloss.Style
	fill   lipgloss.Style
	empty  lipgloss.Style
	feed   lipgloss.Style
}

func (t theme) styles() styles {
	return styles{
		header: lipgloss.NewStyle().Background(t.headerBg).Foreground(t.headerFg).Padding(0, 1),
		name:   lipgloss.NewStyle().Width(20),
		fill:   lipgloss.NewStyle().Foreground(t.barFill),
		empty:  lipgloss.NewStyle().Foreground(t.barEmpty),
		feed:   lipgloss.NewStyle().Foreground(t.feedFg),
	}
}

type tickMsg time.Time

type model struct {
	engine   *gesture.Engine
	gestures []*gesture.Gesture
	events   []replay.EventConfig

	eventIdx int
	done     bool

	feed  []string
	theme theme
	width int
}

func newModel(engine *gesture.Engine, gestures []*gesture.Gesture, events []replay.EventConfig) model {
	return model{
		engine:   engine,
		gestures: gestures,
		events:   events,
		theme:    defaultTheme(),
		width:    60,
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tickMsg:
		if m.done {
			return m, nil
		}
		if m.eventIdx >= len(m.events) {
			m.done = true
			return m, nil
		}
		ev := m.events[m.eventIdx]
		m.eventIdx++
		applyEvent(m.engine, ev)
		for {
			finished := m.engine.HandleFinishedGesture()
			if finished == nil {
				break
			}
			m.feed = append(m.feed, fmt.Sprintf("[%dms] %s completed", ev.TimestampMS, finished.Name()))
		}
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	s := m.theme.styles()
	var b strings.Builder

	status := "running"
	if m.done {
		status = "done"
	}
	b.WriteString(s.header.Width(m.width).Render(fmt.Sprintf("gesturemonitor  —  event %d/%d  —  %s", m.eventIdx, len(m.events), status)))
	b.WriteString("\n\n")

	barWidth := m.width - 24
	if barWidth < 10 {
		barWidth = 10
	}
	for _, g := range m.gestures {
		progress := m.engine.GestureProgress(g)
		filled := int(progress * float64(barWidth))
		bar := s.fill.Render(strings.Repeat("█", filled)) + s.empty.Render(strings.Repeat("░", barWidth-filled))
		b.WriteString(s.name.Render(g.Name()) + " " + bar + fmt.Sprintf(" %3.0f%%\n", progress*100))
	}

	b.WriteString("\n")
	start := 0
	if len(m.feed) > 8 {
		start = len(m.feed) - 8
	}
	for _, line := range m.feed[start:] {
		b.WriteString(s.feed.Render(line) + "\n")
	}

	return b.String()
}

func applyEvent(engine *gesture.Engine, ev replay.EventConfig) {
	switch ev.Type {
	case "touch":
		mode, err := replay.ParseTouchModeForEvent(ev.Mode)
		if err != nil {
			return
		}
		engine.RegisterTouch(ev.TimestampMS, ev.Slot, mode, ev.X, ev.Y)
	case "move":
		engine.RegisterMove(ev.TimestampMS, ev.Slot, 0, ev.DX, ev.DY)
	}
}

func main() {
	var scriptPath string
	flag.StringVar(&scriptPath, "script", "script.yaml", "Path to the replay script")
	flag.StringVar(&scriptPath, "s", "script.yaml", "Path to the replay script (alias)")
	flag.Parse()

	script, err := replay.LoadScript(scriptPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gesturemonitor:", err)
		os.Exit(1)
	}
	engine, gestures, err := replay.Build(script)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gesturemonitor:", err)
		os.Exit(1)
	}

	m := newModel(engine, gestures, script.Events)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "gesturemonitor:", err)
		os.Exit(1)
	}
}
