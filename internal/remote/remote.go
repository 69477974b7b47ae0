// Package remote is an interactive terminal remote: keys pressed in the
// terminal are forwarded to the receiver as press/release code pairs.
package remote

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/wowint/internal/gamepad"
	"github.com/zhubert/wowint/internal/keys"
	"github.com/zhubert/wowint/internal/logger"
	"github.com/zhubert/wowint/internal/registry"
	"github.com/zhubert/wowint/internal/sender"
)

// sentMsg reports the outcome of one send.
type sentMsg struct {
	code int32
	err  error
}

// releaseMsg fires when a tapped key has been held long enough.
type releaseMsg struct {
	code int32
}

// Model is the Bubble Tea model of the remote.
type Model struct {
	sender sender.Sender
	target string
	hold   time.Duration

	input    textinput.Model
	entering bool

	width   int
	sent    int
	last    int32
	hasLast bool
	err     error
}

// New creates a remote forwarding to s. target labels the header and hold is
// how long each tapped key stays down.
func New(s sender.Sender, target string, hold time.Duration) *Model {
	input := textinput.New()
	input.Placeholder = "code or key name, e.g. 1037 or LeftArrow:up"
	input.SetWidth(40)
	return &Model{
		sender: s,
		target: target,
		hold:   hold,
		input:  input,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Sent returns the number of codes delivered so far.
func (m *Model) Sent() int { return m.sent }

// Err returns the most recent send or parse error.
func (m *Model) Err() error { return m.err }

// Entering reports whether the code entry field is open.
func (m *Model) Entering() bool { return m.entering }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case sentMsg:
		if msg.err != nil {
			logger.Warn("Remote: send %d failed: %v", msg.code, msg.err)
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.sent++
		m.last = msg.code
		m.hasLast = true
		return m, nil

	case releaseMsg:
		return m, m.send(msg.code)

	case tea.KeyPressMsg:
		key := msg.String()
		if key == keys.CtrlC {
			return m, tea.Quit
		}
		if m.entering {
			return m.updateEntry(msg)
		}
		return m.updateForward(key)
	}
	return m, nil
}

func (m *Model) updateForward(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.CtrlT:
		m.entering = true
		m.input.SetValue("")
		return m, m.input.Focus()
	case keys.CtrlP:
		return m, m.send(gamepad.ReleaseAll.Code())
	}

	name, ok := keys.RegistryName(key)
	if !ok {
		logger.Debug("Remote: ignoring unmapped key %q", key)
		return m, nil
	}
	info, ok := registry.LookupByName(name)
	if !ok {
		return m, nil
	}
	return m, tea.Batch(m.send(int32(info.PressCode)), m.releaseAfter(int32(info.ReleaseCode)))
}

func (m *Model) updateEntry(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape, keys.CtrlT:
		m.entering = false
		m.input.Blur()
		return m, nil
	case keys.Enter:
		token := strings.TrimSpace(m.input.Value())
		m.input.SetValue("")
		if token == "" {
			return m, nil
		}
		code, err := registry.Resolve(token)
		if err != nil {
			m.err = err
			return m, nil
		}
		return m, m.send(int32(code))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send delivers code off the update loop.
func (m *Model) send(code int32) tea.Cmd {
	s := m.sender
	return func() tea.Msg {
		return sentMsg{code: code, err: s.SendToDefaultTarget(code)}
	}
}

func (m *Model) releaseAfter(code int32) tea.Cmd {
	return tea.Tick(m.hold, func(time.Time) tea.Msg {
		return releaseMsg{code: code}
	})
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	var v tea.View
	v.SetContent(m.render())
	return v
}

func (m *Model) render() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("wowint remote → " + m.target))
	b.WriteString("\n\n")

	last := LabelStyle.Render("none yet")
	if m.hasLast {
		last = CodeStyle.Render(fmt.Sprintf("%d", m.last))
		if desc := registry.Describe(registry.Code(m.last)); desc != "" {
			last += " " + LabelStyle.Render(desc)
		}
	}
	fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render("last:"), last)
	fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render("sent:"), SuccessStyle.Render(fmt.Sprintf("%d", m.sent)))
	if m.err != nil {
		fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render("error:"), ErrorStyle.Render(m.err.Error()))
	}

	if m.entering {
		b.WriteString("\n")
		b.WriteString(PanelStyle.Render(m.input.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderFooter(m.entering))
	return b.String()
}
