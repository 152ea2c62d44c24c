// Package tui runs barber sessions in the terminal with Bubble Tea, locally
// or over SSH via Wish. It maps keys to actions, drives the fixed tick and
// draws the game's screen buffer with lipgloss colors.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/new-barber/internal/engine"
)

// TickMsg is sent once per simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(engine.TickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
