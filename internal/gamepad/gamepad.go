// Package gamepad defines the gamepad action codes (1300-1399).
//
// Unlike keyboard codes these have no press/release doubling: each value is a
// distinct action such as "press A" or "set the right stick vertical axis to
// -75%". They are kept apart from the keyboard registry lookups.
package gamepad

import "strconv"

// Action is a gamepad action code.
type Action int32

// String returns the action name, or the decimal code if it is not a known action.
func (a Action) String() string {
	if n, ok := names[a]; ok {
		return n
	}
	return strconv.Itoa(int(a))
}

// Code returns the action as a wire integer.
func (a Action) Code() int32 { return int32(a) }

// Valid reports whether a is a defined action.
func (a Action) Valid() bool {
	_, ok := names[a]
	return ok
}

// All returns every defined action in ascending code order.
func All() []Action {
	out := make([]Action, len(order))
	copy(out, order)
	return out
}

// Lookup finds an action by its exact name.
func Lookup(name string) (Action, bool) {
	for _, a := range order {
		if names[a] == name {
			return a, true
		}
	}
	return 0, false
}
