package glint

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval paces the animation pump. Frames measure real elapsed
// time, so a late tick advances further rather than slowing the toast
// down.
const frameInterval = time.Second / 30

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func forceRemoveCmd(id int64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return forceRemoveMsg{id: id}
	})
}
