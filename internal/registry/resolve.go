package registry

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/zhubert/wowint/internal/errors"
	"github.com/zhubert/wowint/internal/gamepad"
)

// maxSuggestDistance bounds how far a name may be from a known name to be suggested.
const maxSuggestDistance = 3

// Resolve turns a command-line token into a wire code. A token is one of:
//
//	1037            any decimal int32, sent as is
//	LeftArrow       a key name, resolved to its press code
//	LeftArrow:up    a key name with an explicit transition (down/press, up/release)
//	PressA          a gamepad action name
func Resolve(token string) (Code, error) {
	if n, err := strconv.ParseInt(token, 10, 32); err == nil {
		return Code(n), nil
	}

	name, transition, hasTransition := strings.Cut(token, ":")
	if name == "" {
		return 0, errors.InvalidToken(token, "empty name")
	}

	if key, ok := LookupByName(name); ok {
		if !hasTransition {
			return key.Press(), nil
		}
		switch transition {
		case "down", "press":
			return key.Press(), nil
		case "up", "release":
			return key.Release(), nil
		default:
			return 0, errors.InvalidToken(token, "transition must be press or release")
		}
	}

	if action, ok := gamepad.Lookup(name); ok {
		if hasTransition {
			return 0, errors.InvalidToken(token, "gamepad actions have no transition")
		}
		return Code(action), nil
	}

	return 0, errors.KeyNotFound(name, Suggest(name, 3))
}

// Suggest returns up to limit known key and gamepad names closest to name.
func Suggest(name string, limit int) []string {
	type candidate struct {
		name string
		dist int
	}

	seen := make(map[string]bool)
	var candidates []candidate
	consider := func(n string) {
		if seen[n] {
			return
		}
		seen[n] = true
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(n))
		if d <= maxSuggestDistance {
			candidates = append(candidates, candidate{n, d})
		}
	}

	for _, k := range table {
		consider(k.Name)
	}
	for _, a := range gamepad.All() {
		consider(a.String())
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}

// Describe returns a human-readable name for a wire code, e.g. "LeftArrow (release)"
// or "PressA". Unknown codes yield an empty string.
func Describe(code Code) string {
	if code.IsGamepad() {
		a := gamepad.Action(code)
		if a.Valid() {
			return a.String()
		}
		return ""
	}
	key, ok := LookupByCode(code)
	if !ok {
		return ""
	}
	if code.IsKeyRelease() {
		return key.Name + " (release)"
	}
	return key.Name + " (press)"
}
