package registry

// Code is an action code as carried on the wire.
type Code int32

// Action code ranges.
const (
	KeyPressMin   Code = 1008
	KeyPressMax   Code = 1253
	KeyReleaseMin Code = 2008
	KeyReleaseMax Code = 2253
	GamepadMin    Code = 1300
	GamepadMax    Code = 1399
)

// IsKeyPress reports whether c is in the keyboard press range.
func (c Code) IsKeyPress() bool { return c >= KeyPressMin && c <= KeyPressMax }

// IsKeyRelease reports whether c is in the keyboard release range.
func (c Code) IsKeyRelease() bool { return c >= KeyReleaseMin && c <= KeyReleaseMax }

// IsGamepad reports whether c is in the gamepad action range.
func (c Code) IsGamepad() bool { return c >= GamepadMin && c <= GamepadMax }

// Release returns the release code paired with a press code. Any other code
// is returned unchanged.
func (c Code) Release() Code {
	if c.IsKeyPress() {
		return c + releaseOffset
	}
	return c
}

// Press returns the press code paired with a release code. Any other code is
// returned unchanged.
func (c Code) Press() Code {
	if c.IsKeyRelease() {
		return c - releaseOffset
	}
	return c
}
