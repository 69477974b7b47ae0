package registry

// VirtualKey is a platform (Windows) virtual-key code.
type VirtualKey uint8

const (
	KeyBackspace          VirtualKey = 0x08
	KeyTab                VirtualKey = 0x09
	KeyClear              VirtualKey = 0x0C
	KeyEnter              VirtualKey = 0x0D
	KeyShift              VirtualKey = 0x10
	KeyControl            VirtualKey = 0x11
	KeyAlt                VirtualKey = 0x12
	KeyPause              VirtualKey = 0x13
	KeyCapsLock           VirtualKey = 0x14
	KeyEscape             VirtualKey = 0x1B
	KeySpace              VirtualKey = 0x20
	KeyPageUp             VirtualKey = 0x21
	KeyPageDown           VirtualKey = 0x22
	KeyEnd                VirtualKey = 0x23
	KeyHome               VirtualKey = 0x24
	KeyLeftArrow          VirtualKey = 0x25
	KeyUpArrow            VirtualKey = 0x26
	KeyRightArrow         VirtualKey = 0x27
	KeyDownArrow          VirtualKey = 0x28
	KeySelect             VirtualKey = 0x29
	KeyPrint              VirtualKey = 0x2A
	KeyExecute            VirtualKey = 0x2B
	KeyPrintScreen        VirtualKey = 0x2C
	KeyInsert             VirtualKey = 0x2D
	KeyDelete             VirtualKey = 0x2E
	KeyHelp               VirtualKey = 0x2F
	KeyDigit0             VirtualKey = 0x30
	KeyDigit1             VirtualKey = 0x31
	KeyDigit2             VirtualKey = 0x32
	KeyDigit3             VirtualKey = 0x33
	KeyDigit4             VirtualKey = 0x34
	KeyDigit5             VirtualKey = 0x35
	KeyDigit6             VirtualKey = 0x36
	KeyDigit7             VirtualKey = 0x37
	KeyDigit8             VirtualKey = 0x38
	KeyDigit9             VirtualKey = 0x39
	KeyA                  VirtualKey = 0x41
	KeyB                  VirtualKey = 0x42
	KeyC                  VirtualKey = 0x43
	KeyD                  VirtualKey = 0x44
	KeyE                  VirtualKey = 0x45
	KeyF                  VirtualKey = 0x46
	KeyG                  VirtualKey = 0x47
	KeyH                  VirtualKey = 0x48
	KeyI                  VirtualKey = 0x49
	KeyJ                  VirtualKey = 0x4A
	KeyK                  VirtualKey = 0x4B
	KeyL                  VirtualKey = 0x4C
	KeyM                  VirtualKey = 0x4D
	KeyN                  VirtualKey = 0x4E
	KeyO                  VirtualKey = 0x4F
	KeyP                  VirtualKey = 0x50
	KeyQ                  VirtualKey = 0x51
	KeyR                  VirtualKey = 0x52
	KeyS                  VirtualKey = 0x53
	KeyT                  VirtualKey = 0x54
	KeyU                  VirtualKey = 0x55
	KeyV                  VirtualKey = 0x56
	KeyW                  VirtualKey = 0x57
	KeyX                  VirtualKey = 0x58
	KeyY                  VirtualKey = 0x59
	KeyZ                  VirtualKey = 0x5A
	KeyLeftWindows        VirtualKey = 0x5B
	KeyRightWindows       VirtualKey = 0x5C
	KeyApps               VirtualKey = 0x5D
	KeySleep              VirtualKey = 0x5F
	KeyNumpad0            VirtualKey = 0x60
	KeyNumpad1            VirtualKey = 0x61
	KeyNumpad2            VirtualKey = 0x62
	KeyNumpad3            VirtualKey = 0x63
	KeyNumpad4            VirtualKey = 0x64
	KeyNumpad5            VirtualKey = 0x65
	KeyNumpad6            VirtualKey = 0x66
	KeyNumpad7            VirtualKey = 0x67
	KeyNumpad8            VirtualKey = 0x68
	KeyNumpad9            VirtualKey = 0x69
	KeyMultiply           VirtualKey = 0x6A
	KeyAdd                VirtualKey = 0x6B
	KeySeparator          VirtualKey = 0x6C
	KeySubtract           VirtualKey = 0x6D
	KeyDecimal            VirtualKey = 0x6E
	KeyDivide             VirtualKey = 0x6F
	KeyF1                 VirtualKey = 0x70
	KeyF2                 VirtualKey = 0x71
	KeyF3                 VirtualKey = 0x72
	KeyF4                 VirtualKey = 0x73
	KeyF5                 VirtualKey = 0x74
	KeyF6                 VirtualKey = 0x75
	KeyF7                 VirtualKey = 0x76
	KeyF8                 VirtualKey = 0x77
	KeyF9                 VirtualKey = 0x78
	KeyF10                VirtualKey = 0x79
	KeyF11                VirtualKey = 0x7A
	KeyF12                VirtualKey = 0x7B
	KeyF13                VirtualKey = 0x7C
	KeyF14                VirtualKey = 0x7D
	KeyF15                VirtualKey = 0x7E
	KeyF16                VirtualKey = 0x7F
	KeyF17                VirtualKey = 0x80
	KeyF18                VirtualKey = 0x81
	KeyF19                VirtualKey = 0x82
	KeyF20                VirtualKey = 0x83
	KeyF21                VirtualKey = 0x84
	KeyF22                VirtualKey = 0x85
	KeyF23                VirtualKey = 0x86
	KeyF24                VirtualKey = 0x87
	KeyNumLock            VirtualKey = 0x90
	KeyScrollLock         VirtualKey = 0x91
	KeyLeftShift          VirtualKey = 0xA0
	KeyRightShift         VirtualKey = 0xA1
	KeyLeftControl        VirtualKey = 0xA2
	KeyRightControl       VirtualKey = 0xA3
	KeyLeftAlt            VirtualKey = 0xA4
	KeyRightAlt           VirtualKey = 0xA5
	KeyBrowserBack        VirtualKey = 0xA6
	KeyBrowserForward     VirtualKey = 0xA7
	KeyBrowserRefresh     VirtualKey = 0xA8
	KeyBrowserStop        VirtualKey = 0xA9
	KeyBrowserSearch      VirtualKey = 0xAA
	KeyBrowserFavorites   VirtualKey = 0xAB
	KeyBrowserHome        VirtualKey = 0xAC
	KeyVolumeMute         VirtualKey = 0xAD
	KeyVolumeDown         VirtualKey = 0xAE
	KeyVolumeUp           VirtualKey = 0xAF
	KeyMediaNextTrack     VirtualKey = 0xB0
	KeyMediaPreviousTrack VirtualKey = 0xB1
	KeyMediaStop          VirtualKey = 0xB2
	KeyMediaPlayPause     VirtualKey = 0xB3
	KeyLaunchMail         VirtualKey = 0xB4
	KeyLaunchMediaSelect  VirtualKey = 0xB5
	KeyLaunchApp1         VirtualKey = 0xB6
	KeyLaunchApp2         VirtualKey = 0xB7
	KeyOEM1               VirtualKey = 0xBA
	KeyOEMPlus            VirtualKey = 0xBB
	KeyOEMComma           VirtualKey = 0xBC
	KeyOEMMinus           VirtualKey = 0xBD
	KeyOEMPeriod          VirtualKey = 0xBE
	KeyOEM2               VirtualKey = 0xBF
	KeyOEM3               VirtualKey = 0xC0
	KeyOEM4               VirtualKey = 0xDB
	KeyOEM5               VirtualKey = 0xDC
	KeyOEM6               VirtualKey = 0xDD
	KeyOEM7               VirtualKey = 0xDE
	KeyOEM8               VirtualKey = 0xDF
	KeyOEM102             VirtualKey = 0xE2
	KeyProcessKey         VirtualKey = 0xE5
	KeyAttn               VirtualKey = 0xF6
	KeyCrSel              VirtualKey = 0xF7
	KeyExSel              VirtualKey = 0xF8
	KeyEraseEOF           VirtualKey = 0xF9
	KeyPlay               VirtualKey = 0xFA
	KeyZoom               VirtualKey = 0xFB
	KeyPA1                VirtualKey = 0xFD
)

type definition struct {
	name string
	key  VirtualKey
}

// definitions is the canonical key order. Aliases follow their primary name so
// that code lookups resolve to the primary.
var definitions = []definition{
	{"Backspace", KeyBackspace},
	{"Tab", KeyTab},
	{"Clear", KeyClear},
	{"Enter", KeyEnter},
	{"Return", KeyEnter},
	{"Shift", KeyShift},
	{"Control", KeyControl},
	{"Ctrl", KeyControl},
	{"Alt", KeyAlt},
	{"Menu", KeyAlt},
	{"Pause", KeyPause},
	{"CapsLock", KeyCapsLock},
	{"Escape", KeyEscape},
	{"Esc", KeyEscape},
	{"Space", KeySpace},
	{"PageUp", KeyPageUp},
	{"PageDown", KeyPageDown},
	{"End", KeyEnd},
	{"Home", KeyHome},
	{"LeftArrow", KeyLeftArrow},
	{"Left", KeyLeftArrow},
	{"UpArrow", KeyUpArrow},
	{"Up", KeyUpArrow},
	{"RightArrow", KeyRightArrow},
	{"Right", KeyRightArrow},
	{"DownArrow", KeyDownArrow},
	{"Down", KeyDownArrow},
	{"Select", KeySelect},
	{"Print", KeyPrint},
	{"Execute", KeyExecute},
	{"PrintScreen", KeyPrintScreen},
	{"Insert", KeyInsert},
	{"Ins", KeyInsert},
	{"Delete", KeyDelete},
	{"Del", KeyDelete},
	{"Help", KeyHelp},
	{"Digit0", KeyDigit0},
	{"Digit1", KeyDigit1},
	{"Digit2", KeyDigit2},
	{"Digit3", KeyDigit3},
	{"Digit4", KeyDigit4},
	{"Digit5", KeyDigit5},
	{"Digit6", KeyDigit6},
	{"Digit7", KeyDigit7},
	{"Digit8", KeyDigit8},
	{"Digit9", KeyDigit9},
	{"A", KeyA},
	{"B", KeyB},
	{"C", KeyC},
	{"D", KeyD},
	{"E", KeyE},
	{"F", KeyF},
	{"G", KeyG},
	{"H", KeyH},
	{"I", KeyI},
	{"J", KeyJ},
	{"K", KeyK},
	{"L", KeyL},
	{"M", KeyM},
	{"N", KeyN},
	{"O", KeyO},
	{"P", KeyP},
	{"Q", KeyQ},
	{"R", KeyR},
	{"S", KeyS},
	{"T", KeyT},
	{"U", KeyU},
	{"V", KeyV},
	{"W", KeyW},
	{"X", KeyX},
	{"Y", KeyY},
	{"Z", KeyZ},
	{"LeftWindows", KeyLeftWindows},
	{"RightWindows", KeyRightWindows},
	{"Apps", KeyApps},
	{"ContextMenu", KeyApps},
	{"Sleep", KeySleep},
	{"Numpad0", KeyNumpad0},
	{"Numpad1", KeyNumpad1},
	{"Numpad2", KeyNumpad2},
	{"Numpad3", KeyNumpad3},
	{"Numpad4", KeyNumpad4},
	{"Numpad5", KeyNumpad5},
	{"Numpad6", KeyNumpad6},
	{"Numpad7", KeyNumpad7},
	{"Numpad8", KeyNumpad8},
	{"Numpad9", KeyNumpad9},
	{"Multiply", KeyMultiply},
	{"Add", KeyAdd},
	{"Separator", KeySeparator},
	{"Subtract", KeySubtract},
	{"Decimal", KeyDecimal},
	{"Divide", KeyDivide},
	{"F1", KeyF1},
	{"F2", KeyF2},
	{"F3", KeyF3},
	{"F4", KeyF4},
	{"F5", KeyF5},
	{"F6", KeyF6},
	{"F7", KeyF7},
	{"F8", KeyF8},
	{"F9", KeyF9},
	{"F10", KeyF10},
	{"F11", KeyF11},
	{"F12", KeyF12},
	{"F13", KeyF13},
	{"F14", KeyF14},
	{"F15", KeyF15},
	{"F16", KeyF16},
	{"F17", KeyF17},
	{"F18", KeyF18},
	{"F19", KeyF19},
	{"F20", KeyF20},
	{"F21", KeyF21},
	{"F22", KeyF22},
	{"F23", KeyF23},
	{"F24", KeyF24},
	{"NumLock", KeyNumLock},
	{"ScrollLock", KeyScrollLock},
	{"LeftShift", KeyLeftShift},
	{"RightShift", KeyRightShift},
	{"LeftControl", KeyLeftControl},
	{"RightControl", KeyRightControl},
	{"LeftAlt", KeyLeftAlt},
	{"RightAlt", KeyRightAlt},
	{"BrowserBack", KeyBrowserBack},
	{"BrowserForward", KeyBrowserForward},
	{"BrowserRefresh", KeyBrowserRefresh},
	{"BrowserStop", KeyBrowserStop},
	{"BrowserSearch", KeyBrowserSearch},
	{"BrowserFavorites", KeyBrowserFavorites},
	{"BrowserHome", KeyBrowserHome},
	{"VolumeMute", KeyVolumeMute},
	{"VolumeDown", KeyVolumeDown},
	{"VolumeUp", KeyVolumeUp},
	{"MediaNextTrack", KeyMediaNextTrack},
	{"MediaPreviousTrack", KeyMediaPreviousTrack},
	{"MediaStop", KeyMediaStop},
	{"MediaPlayPause", KeyMediaPlayPause},
	{"LaunchMail", KeyLaunchMail},
	{"LaunchMediaSelect", KeyLaunchMediaSelect},
	{"LaunchApp1", KeyLaunchApp1},
	{"LaunchApp2", KeyLaunchApp2},
	{"OEM1", KeyOEM1},
	{"Semicolon", KeyOEM1},
	{"OEMPlus", KeyOEMPlus},
	{"Equals", KeyOEMPlus},
	{"OEMComma", KeyOEMComma},
	{"Comma", KeyOEMComma},
	{"OEMMinus", KeyOEMMinus},
	{"Minus", KeyOEMMinus},
	{"OEMPeriod", KeyOEMPeriod},
	{"Period", KeyOEMPeriod},
	{"OEM2", KeyOEM2},
	{"Slash", KeyOEM2},
	{"OEM3", KeyOEM3},
	{"Backquote", KeyOEM3},
	{"OEM4", KeyOEM4},
	{"LeftBracket", KeyOEM4},
	{"OEM5", KeyOEM5},
	{"Backslash", KeyOEM5},
	{"OEM6", KeyOEM6},
	{"RightBracket", KeyOEM6},
	{"OEM7", KeyOEM7},
	{"Quote", KeyOEM7},
	{"OEM8", KeyOEM8},
	{"OEM102", KeyOEM102},
	{"IntlBackslash", KeyOEM102},
	{"ProcessKey", KeyProcessKey},
	{"Attn", KeyAttn},
	{"CrSel", KeyCrSel},
	{"ExSel", KeyExSel},
	{"EraseEOF", KeyEraseEOF},
	{"Play", KeyPlay},
	{"Zoom", KeyZoom},
	{"PA1", KeyPA1},
}
