// Package registry maps symbolic keyboard key names to the integer action codes
// carried on the wire.
//
// Every keyboard key has a platform virtual-key code (vk). Its press code is
// 1000+vk and its release code is 2000+vk. The table is built once from an
// ordered list of (name, key) pairs and is never mutated afterwards. Several
// names may share a key ("Left" and "LeftArrow"); every lookup scans the table
// in definition order and returns the first match.
package registry

// KeyInfo describes one named keyboard key.
type KeyInfo struct {
	Name            string
	PlatformCode    uint8
	PlatformCodeHex uint16
	PressCode       uint16
	ReleaseCode     uint16
}

// Press returns the press code as a wire code.
func (k KeyInfo) Press() Code { return Code(k.PressCode) }

// Release returns the release code as a wire code.
func (k KeyInfo) Release() Code { return Code(k.ReleaseCode) }

const (
	pressOffset   = 1000
	releaseOffset = 1000
)

func newKeyInfo(name string, vk VirtualKey) KeyInfo {
	press := uint16(vk) + pressOffset
	return KeyInfo{
		Name:            name,
		PlatformCode:    uint8(vk),
		PlatformCodeHex: uint16(vk),
		PressCode:       press,
		ReleaseCode:     press + releaseOffset,
	}
}

var table = buildTable(definitions)

func buildTable(defs []definition) []KeyInfo {
	out := make([]KeyInfo, len(defs))
	for i, d := range defs {
		out[i] = newKeyInfo(d.name, d.key)
	}
	return out
}

// All returns a copy of the registry in definition order.
func All() []KeyInfo {
	out := make([]KeyInfo, len(table))
	copy(out, table)
	return out
}

func find(match func(KeyInfo) bool) (KeyInfo, bool) {
	for _, k := range table {
		if match(k) {
			return k, true
		}
	}
	return KeyInfo{}, false
}

// LookupByName finds the first key whose name equals name exactly.
func LookupByName(name string) (KeyInfo, bool) {
	return find(func(k KeyInfo) bool { return k.Name == name })
}

// LookupByPlatformCode finds the first key with the given virtual-key code.
func LookupByPlatformCode(code uint8) (KeyInfo, bool) {
	return find(func(k KeyInfo) bool { return k.PlatformCode == code })
}

// LookupByPlatformCodeHex is LookupByPlatformCode over the 16-bit field.
func LookupByPlatformCodeHex(code uint16) (KeyInfo, bool) {
	return find(func(k KeyInfo) bool { return k.PlatformCodeHex == code })
}

// LookupByPressCode finds the first key whose press code is code.
func LookupByPressCode(code uint16) (KeyInfo, bool) {
	return find(func(k KeyInfo) bool { return k.PressCode == code })
}

// LookupByReleaseCode finds the first key whose release code is code.
func LookupByReleaseCode(code uint16) (KeyInfo, bool) {
	return find(func(k KeyInfo) bool { return k.ReleaseCode == code })
}

// LookupByCode finds the key for either a press or a release code.
func LookupByCode(code Code) (KeyInfo, bool) {
	switch {
	case code.IsKeyPress():
		return LookupByPressCode(uint16(code))
	case code.IsKeyRelease():
		return LookupByReleaseCode(uint16(code))
	}
	return KeyInfo{}, false
}
