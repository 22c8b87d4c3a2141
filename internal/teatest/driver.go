// Package teatest drives bubbletea models synchronously in tests.
//
// Instead of running a tea.Program, the Driver feeds messages through
// Update directly and drains every returned Cmd before giving control
// back, so a test observes each state deterministically and without
// goroutines. Cmds that block on timers (cursor blink) are executed with
// a short timeout and skipped when they do not return promptly.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth caps recursive command draining against message loops.
const maxDrainDepth = 100

// cmdTimeout separates real Cmds (which settle in microseconds against a
// test server or fake) from timer-backed ones like cursor blink (~530ms).
const cmdTimeout = 25 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when a tea.QuitMsg is seen during drain. The real
	// runtime intercepts it before the model, so the driver tracks it.
	Quitting bool
}

// New creates a Driver, sends an initial window size, and drains the
// model's Init command.
func New(t *testing.T, model tea.Model, width, height int) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	d.Model = updated
	d.drain(d.Model.Init(), 0)
	return d
}

// Send dispatches a message through Update and drains all resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

// Press sends a single character key.
func (d *Driver) Press(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressSpecial sends a non-character key such as tea.KeyEnter or tea.KeyEsc.
func (d *Driver) PressSpecial(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// Type sends a string character by character.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Press(r)
	}
}

// View returns the full rendered output of the model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", maxDrainDepth)
		return
	}

	msg := runWithTimeout(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub != nil {
				d.drain(sub, depth+1)
			}
		}
		return
	}

	if _, quit := msg.(tea.QuitMsg); quit {
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drain(next, depth+1)
}

// runWithTimeout executes a Cmd, returning nil if it does not settle
// within cmdTimeout.
func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink detects blink messages from bubbles/cursor, which chain
// into timer-backed Cmds when fed through Update.
func isCursorBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
