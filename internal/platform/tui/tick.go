// Package tui provides the Bubble Tea integration for the runner. It handles
// the terminal UI loop, input mapping, and timer scheduling; the game core
// stays free of any terminal dependency.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SimTickMsg drives one fixed-period simulation tick.
type SimTickMsg struct {
	Gen uint64
}

// JumpTickMsg drives one jump-integration tick. At carries the wall time the
// timer fired so the jump arc can normalize against timer jitter.
type JumpTickMsg struct {
	Gen uint64
	At  time.Time
}

// SpawnMsg fires when a randomized obstacle-spawn delay elapses.
type SpawnMsg struct {
	Gen uint64
}

// Every message carries the session generation it was armed with; the session
// ignores messages from a previous generation, so cancellation never depends
// on stopping a timer that may already have fired.

func simTickCmd(period time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(period, func(time.Time) tea.Msg {
		return SimTickMsg{Gen: gen}
	})
}

func jumpTickCmd(period time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return JumpTickMsg{Gen: gen, At: t}
	})
}

func spawnCmd(delay time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return SpawnMsg{Gen: gen}
	})
}
