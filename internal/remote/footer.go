package remote

import "strings"

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

var (
	forwardBindings = []KeyBinding{
		{Key: "any key", Desc: "tap"},
		{Key: "ctrl+t", Desc: "enter code"},
		{Key: "ctrl+p", Desc: "release pad"},
		{Key: "ctrl+c", Desc: "quit"},
	}
	entryBindings = []KeyBinding{
		{Key: "enter", Desc: "send"},
		{Key: "esc", Desc: "cancel"},
		{Key: "ctrl+c", Desc: "quit"},
	}
)

// renderFooter renders the key bindings for the current mode.
func renderFooter(entering bool) string {
	bindings := forwardBindings
	if entering {
		bindings = entryBindings
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}
	return FooterStyle.Render(strings.Join(parts, "  "))
}
