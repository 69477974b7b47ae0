// Package keys maps Bubble Tea v2 key press strings to registry key names.
//
// The navigation and action constants are derived from
// tea.KeyPressMsg{Code: tea.KeyXxx}.String() and are guaranteed to match the
// actual runtime values. Printable characters map through their US-layout key.
package keys

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
)

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Left   = tea.KeyPressMsg{Code: tea.KeyLeft}.String()   // "left"
	Right  = tea.KeyPressMsg{Code: tea.KeyRight}.String()  // "right"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
	Insert = tea.KeyPressMsg{Code: tea.KeyInsert}.String() // "insert"
)

// Action keys
var (
	Enter     = tea.KeyPressMsg{Code: tea.KeyEnter}.String()     // "enter"
	Tab       = tea.KeyPressMsg{Code: tea.KeyTab}.String()       // "tab"
	Space     = tea.KeyPressMsg{Code: tea.KeySpace}.String()     // "space"
	Backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}.String() // "backspace"
	Delete    = tea.KeyPressMsg{Code: tea.KeyDelete}.String()    // "delete"
	Escape    = tea.KeyPressMsg{Code: tea.KeyEscape}.String()    // "esc"
)

// Remote control keys. These are handled by the remote itself and never forwarded.
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
	CtrlT = (tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}).String() // "ctrl+t"
	CtrlP = (tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}).String() // "ctrl+p"
)

var functionKeys = []rune{
	tea.KeyF1, tea.KeyF2, tea.KeyF3, tea.KeyF4, tea.KeyF5, tea.KeyF6,
	tea.KeyF7, tea.KeyF8, tea.KeyF9, tea.KeyF10, tea.KeyF11, tea.KeyF12,
}

var punctuation = map[string]string{
	";":  "Semicolon",
	"=":  "Equals",
	",":  "Comma",
	"-":  "Minus",
	".":  "Period",
	"/":  "Slash",
	"`":  "Backquote",
	"[":  "LeftBracket",
	"\\": "Backslash",
	"]":  "RightBracket",
	"'":  "Quote",
}

var terminalToRegistry = buildMapping()

func buildMapping() map[string]string {
	m := map[string]string{
		Up:        "UpArrow",
		Down:      "DownArrow",
		Left:      "LeftArrow",
		Right:     "RightArrow",
		Home:      "Home",
		End:       "End",
		PgUp:      "PageUp",
		PgDown:    "PageDown",
		Insert:    "Insert",
		Enter:     "Enter",
		Tab:       "Tab",
		Space:     "Space",
		Backspace: "Backspace",
		Delete:    "Delete",
		Escape:    "Escape",
	}
	for i, code := range functionKeys {
		m[tea.KeyPressMsg{Code: code}.String()] = "F" + strconv.Itoa(i+1)
	}
	for c := 'a'; c <= 'z'; c++ {
		name := strings.ToUpper(string(c))
		m[string(c)] = name
		m[name] = name
	}
	for c := '0'; c <= '9'; c++ {
		m[string(c)] = "Digit" + string(c)
	}
	for k, v := range punctuation {
		m[k] = v
	}
	return m
}

// RegistryName returns the registry key name for a terminal key string.
func RegistryName(key string) (string, bool) {
	name, ok := terminalToRegistry[key]
	return name, ok
}
