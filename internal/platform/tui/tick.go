// Package tui runs blockfall in a terminal: the Bubble Tea game loop, key
// handling with inferred key release, the menu, the scoreboard and the SSH
// server that hosts one menu per session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Tick rate bounds in frames per second.
const (
	defaultTickRate = 60
	maxTickRate     = 240
)

// TickMsg triggers one simulation step.
type TickMsg time.Time

func frameInterval(tickRate int) time.Duration {
	switch {
	case tickRate <= 0:
		tickRate = defaultTickRate
	case tickRate > maxTickRate:
		tickRate = maxTickRate
	}
	return time.Second / time.Duration(tickRate)
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
