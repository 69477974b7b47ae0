package registry

import "testing"

func TestTableInvariants(t *testing.T) {
	for _, k := range All() {
		if uint16(k.PlatformCode) != k.PlatformCodeHex {
			t.Errorf("%s: PlatformCodeHex %d != PlatformCode %d", k.Name, k.PlatformCodeHex, k.PlatformCode)
		}
		if k.PressCode != 1000+uint16(k.PlatformCode) {
			t.Errorf("%s: PressCode = %d, want %d", k.Name, k.PressCode, 1000+uint16(k.PlatformCode))
		}
		if k.ReleaseCode != k.PressCode+1000 {
			t.Errorf("%s: ReleaseCode = %d, want %d", k.Name, k.ReleaseCode, k.PressCode+1000)
		}
		if !k.Press().IsKeyPress() {
			t.Errorf("%s: press code %d outside keyboard press range", k.Name, k.PressCode)
		}
		if !k.Release().IsKeyRelease() {
			t.Errorf("%s: release code %d outside keyboard release range", k.Name, k.ReleaseCode)
		}
	}
}

func TestTableSize(t *testing.T) {
	if n := len(All()); n < 140 {
		t.Errorf("registry has %d entries, want at least 140", n)
	}
}

func TestKnownCodes(t *testing.T) {
	tests := []struct {
		name    string
		vk      uint8
		press   uint16
		release uint16
	}{
		{"Backspace", 8, 1008, 2008},
		{"Enter", 13, 1013, 2013},
		{"LeftArrow", 37, 1037, 2037},
		{"Left", 37, 1037, 2037},
		{"A", 65, 1065, 2065},
		{"Numpad4", 100, 1100, 2100},
		{"NumLock", 144, 1144, 2144},
		{"LeftShift", 160, 1160, 2160},
		{"OEM4", 219, 1219, 2219},
		{"OEM102", 226, 1226, 2226},
		{"PA1", 253, 1253, 2253},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := LookupByName(tt.name)
			if !ok {
				t.Fatalf("LookupByName(%q) not found", tt.name)
			}
			if k.PlatformCode != tt.vk || k.PressCode != tt.press || k.ReleaseCode != tt.release {
				t.Errorf("LookupByName(%q) = %+v, want vk=%d press=%d release=%d",
					tt.name, k, tt.vk, tt.press, tt.release)
			}
		})
	}
}

func TestLookupByName_CaseSensitive(t *testing.T) {
	if _, ok := LookupByName("leftarrow"); ok {
		t.Error("LookupByName should be case-sensitive")
	}
	if _, ok := LookupByName(""); ok {
		t.Error("LookupByName(\"\") should not match")
	}
}

func TestLookupByName_AliasesShareCode(t *testing.T) {
	left, _ := LookupByName("Left")
	leftArrow, _ := LookupByName("LeftArrow")
	if left.PressCode != 1037 || leftArrow.PressCode != 1037 {
		t.Errorf("Left=%d LeftArrow=%d, both want 1037", left.PressCode, leftArrow.PressCode)
	}
	if left.Name != "Left" {
		t.Errorf("LookupByName(Left).Name = %q, want the alias entry", left.Name)
	}
}

func TestLookupByCode_FirstMatchWins(t *testing.T) {
	tests := []struct {
		name   string
		lookup func() (KeyInfo, bool)
		want   string
	}{
		{"press 1037", func() (KeyInfo, bool) { return LookupByPressCode(1037) }, "LeftArrow"},
		{"release 2037", func() (KeyInfo, bool) { return LookupByReleaseCode(2037) }, "LeftArrow"},
		{"platform 37", func() (KeyInfo, bool) { return LookupByPlatformCode(37) }, "LeftArrow"},
		{"platform hex 0x25", func() (KeyInfo, bool) { return LookupByPlatformCodeHex(0x25) }, "LeftArrow"},
		{"press 1013", func() (KeyInfo, bool) { return LookupByPressCode(1013) }, "Enter"},
		{"release 2219", func() (KeyInfo, bool) { return LookupByReleaseCode(2219) }, "OEM4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := tt.lookup()
			if !ok {
				t.Fatal("lookup not found")
			}
			if k.Name != tt.want {
				t.Errorf("Name = %q, want %q", k.Name, tt.want)
			}
		})
	}
}

func TestLookup_NotFound(t *testing.T) {
	if k, ok := LookupByPressCode(1300); ok {
		t.Errorf("LookupByPressCode(1300) = %+v, want not found", k)
	}
	if _, ok := LookupByReleaseCode(1037); ok {
		t.Error("a press code is not a release code")
	}
	if _, ok := LookupByPlatformCode(0); ok {
		t.Error("LookupByPlatformCode(0) should not match")
	}
	if _, ok := LookupByPlatformCodeHex(0x1FF); ok {
		t.Error("LookupByPlatformCodeHex(0x1FF) should not match")
	}
	if k, ok := LookupByName("NoSuchKey"); ok || k != (KeyInfo{}) {
		t.Errorf("LookupByName(NoSuchKey) = %+v, %v; want zero value, false", k, ok)
	}
}

func TestLookupByCode(t *testing.T) {
	if k, ok := LookupByCode(2065); !ok || k.Name != "A" {
		t.Errorf("LookupByCode(2065) = %+v, %v", k, ok)
	}
	if _, ok := LookupByCode(1300); ok {
		t.Error("gamepad code should not resolve to a key")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "mutated"
	if All()[0].Name == "mutated" {
		t.Error("mutating All() result should not affect the registry")
	}
}

func TestCodeRanges(t *testing.T) {
	tests := []struct {
		code                    Code
		press, release, gamepad bool
	}{
		{1007, false, false, false},
		{1008, true, false, false},
		{1253, true, false, false},
		{1254, false, false, false},
		{1300, false, false, true},
		{1399, false, false, true},
		{2008, false, true, false},
		{2253, false, true, false},
		{42, false, false, false},
	}

	for _, tt := range tests {
		if got := tt.code.IsKeyPress(); got != tt.press {
			t.Errorf("Code(%d).IsKeyPress() = %v", tt.code, got)
		}
		if got := tt.code.IsKeyRelease(); got != tt.release {
			t.Errorf("Code(%d).IsKeyRelease() = %v", tt.code, got)
		}
		if got := tt.code.IsGamepad(); got != tt.gamepad {
			t.Errorf("Code(%d).IsGamepad() = %v", tt.code, got)
		}
	}
}

func TestCodePairing(t *testing.T) {
	if got := Code(1037).Release(); got != 2037 {
		t.Errorf("Code(1037).Release() = %d, want 2037", got)
	}
	if got := Code(2037).Press(); got != 1037 {
		t.Errorf("Code(2037).Press() = %d, want 1037", got)
	}
	if got := Code(1300).Release(); got != 1300 {
		t.Errorf("gamepad code Release() = %d, want unchanged", got)
	}
	if got := Code(1037).Press(); got != 1037 {
		t.Errorf("press code Press() = %d, want unchanged", got)
	}
}
