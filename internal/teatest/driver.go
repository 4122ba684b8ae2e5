// Package teatest drives bubbletea models synchronously in tests.
//
// A Driver calls Update directly and runs every returned Cmd inline, feeding
// the resulting messages back into the model. Cmds that block (cursor blink,
// stopwatch ticks) are abandoned after a short timeout.
package teatest

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDepth bounds how many Cmd generations one Send may run.
const MaxDepth = 100

// cmdTimeout separates immediate Cmds from timer-driven ones.
const cmdTimeout = 10 * time.Millisecond

var cmdSliceType = reflect.TypeOf([]tea.Cmd(nil))

// Driver owns a model and the messages it has produced.
type Driver struct {
	t     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg has been produced.
	Quitting bool
}

func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	return &Driver{t: t, Model: model}
}

// Init runs the model's Init Cmd.
func (d *Driver) Init() *Driver {
	d.t.Helper()
	d.run(d.Model.Init(), 0)
	return d
}

// Send feeds msg to the model unless it has already quit.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.run(cmd, 0)
}

// Press sends a named key ("enter", "esc", "ctrl+c", "space") or a single rune.
func (d *Driver) Press(name string) {
	d.t.Helper()
	d.Send(keyMsg(d.t, name))
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.t.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Submit types s and presses enter.
func (d *Driver) Submit(s string) {
	d.t.Helper()
	d.Type(s)
	d.Press("enter")
}

func (d *Driver) View() string {
	return d.Model.View()
}

func keyMsg(t *testing.T, name string) tea.KeyMsg {
	t.Helper()
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	runes := []rune(name)
	if len(runes) != 1 {
		t.Fatalf("teatest: unknown key %q", name)
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: runes}
}

func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDepth {
		d.t.Logf("teatest: stopped after %d Cmd generations", MaxDepth)
		return
	}

	msg := await(cmd)
	switch {
	case msg == nil, isBlink(msg):
		return
	case d.Quitting:
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			d.run(c, depth+1)
		}
		return
	}
	// tea.Sequence wraps its Cmds in an unexported slice type.
	if v := reflect.ValueOf(msg); v.Kind() == reflect.Slice && v.Type().ConvertibleTo(cmdSliceType) {
		for _, c := range v.Convert(cmdSliceType).Interface().([]tea.Cmd) {
			d.run(c, depth+1)
		}
		return
	}
	if _, ok := msg.(tea.QuitMsg); ok {
		d.Quitting = true
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.run(next, depth+1)
}

func await(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isBlink matches the unexported cursor blink messages from bubbles.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
