// Package tui provides the Bubble Tea front end for the breakout engine.
// It subscribes to engine state changes, maps keys to engine commands and
// draws snapshots to the terminal.
package tui

import tea "github.com/charmbracelet/bubbletea"

// StateChangedMsg is sent after the engine finishes a tick.
type StateChangedMsg struct{}

// changeFeed bridges engine notifications into the Bubble Tea event loop.
// Notifications coalesce: the engine never blocks on a slow renderer, and the
// renderer always draws the latest state.
type changeFeed struct {
	ch   chan struct{}
	done chan struct{}
}

func newChangeFeed() *changeFeed {
	return &changeFeed{
		ch:   make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// notify is the engine observer. It never blocks.
func (f *changeFeed) notify() {
	select {
	case f.ch <- struct{}{}:
	default:
	}
}

// wait returns a command that delivers the next state change.
func (f *changeFeed) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-f.ch:
			return StateChangedMsg{}
		case <-f.done:
			return nil
		}
	}
}

// close releases any pending wait command.
func (f *changeFeed) close() {
	select {
	case <-f.done:
	default:
		close(f.done)
	}
}
