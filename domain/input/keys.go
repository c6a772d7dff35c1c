package input

import "fmt"

// KeyCount bounds the key code space. Codes are Windows virtual-key codes as
// sent by the server.
const KeyCount = 256

// VirtualKey is a Windows virtual-key code.
type VirtualKey uint8

const (
	VKBack      VirtualKey = 0x08
	VKTab       VirtualKey = 0x09
	VKReturn    VirtualKey = 0x0D
	VKShift     VirtualKey = 0x10
	VKControl   VirtualKey = 0x11
	VKMenu      VirtualKey = 0x12
	VKPause     VirtualKey = 0x13
	VKCapital   VirtualKey = 0x14
	VKEscape    VirtualKey = 0x1B
	VKSpace     VirtualKey = 0x20
	VKPrior     VirtualKey = 0x21
	VKNext      VirtualKey = 0x22
	VKEnd       VirtualKey = 0x23
	VKHome      VirtualKey = 0x24
	VKLeft      VirtualKey = 0x25
	VKUp        VirtualKey = 0x26
	VKRight     VirtualKey = 0x27
	VKDown      VirtualKey = 0x28
	VKSnapshot  VirtualKey = 0x2C
	VKInsert    VirtualKey = 0x2D
	VKDelete    VirtualKey = 0x2E
	VK0         VirtualKey = 0x30
	VK9         VirtualKey = 0x39
	VKA         VirtualKey = 0x41
	VKZ         VirtualKey = 0x5A
	VKLWin      VirtualKey = 0x5B
	VKRWin      VirtualKey = 0x5C
	VKApps      VirtualKey = 0x5D
	VKNumpad0   VirtualKey = 0x60
	VKNumpad9   VirtualKey = 0x69
	VKMultiply  VirtualKey = 0x6A
	VKAdd       VirtualKey = 0x6B
	VKSubtract  VirtualKey = 0x6D
	VKDecimal   VirtualKey = 0x6E
	VKDivide    VirtualKey = 0x6F
	VKF1        VirtualKey = 0x70
	VKF24       VirtualKey = 0x87
	VKNumLock   VirtualKey = 0x90
	VKScroll    VirtualKey = 0x91
	VKLShift    VirtualKey = 0xA0
	VKRShift    VirtualKey = 0xA1
	VKLControl  VirtualKey = 0xA2
	VKRControl  VirtualKey = 0xA3
	VKLMenu     VirtualKey = 0xA4
	VKRMenu     VirtualKey = 0xA5
	VKOem1      VirtualKey = 0xBA
	VKOemPlus   VirtualKey = 0xBB
	VKOemComma  VirtualKey = 0xBC
	VKOemMinus  VirtualKey = 0xBD
	VKOemPeriod VirtualKey = 0xBE
	VKOem2      VirtualKey = 0xBF
	VKOem3      VirtualKey = 0xC0
	VKOem4      VirtualKey = 0xDB
	VKOem5      VirtualKey = 0xDC
	VKOem6      VirtualKey = 0xDD
	VKOem7      VirtualKey = 0xDE
)

var virtualKeyNames = map[VirtualKey]string{
	VKBack: "Back", VKTab: "Tab", VKReturn: "Return", VKShift: "Shift",
	VKControl: "Control", VKMenu: "Alt", VKPause: "Pause", VKCapital: "CapsLock",
	VKEscape: "Escape", VKSpace: "Space", VKPrior: "PageUp", VKNext: "PageDown",
	VKEnd: "End", VKHome: "Home", VKLeft: "Left", VKUp: "Up", VKRight: "Right",
	VKDown: "Down", VKSnapshot: "PrintScreen", VKInsert: "Insert", VKDelete: "Delete",
	VKLWin: "LWin", VKRWin: "RWin", VKApps: "Apps", VKMultiply: "Multiply",
	VKAdd: "Add", VKSubtract: "Subtract", VKDecimal: "Decimal", VKDivide: "Divide",
	VKNumLock: "NumLock", VKScroll: "ScrollLock", VKLShift: "LShift",
	VKRShift: "RShift", VKLControl: "LControl", VKRControl: "RControl",
	VKLMenu: "LAlt", VKRMenu: "RAlt", VKOem1: "Semicolon", VKOemPlus: "Plus",
	VKOemComma: "Comma", VKOemMinus: "Minus", VKOemPeriod: "Period",
	VKOem2: "Slash", VKOem3: "Grave", VKOem4: "LBracket", VKOem5: "Backslash",
	VKOem6: "RBracket", VKOem7: "Quote",
}

func (k VirtualKey) String() string {
	switch {
	case k >= VK0 && k <= VK9:
		return string(rune('0' + k - VK0))
	case k >= VKA && k <= VKZ:
		return string(rune('A' + k - VKA))
	case k >= VKNumpad0 && k <= VKNumpad9:
		return fmt.Sprintf("Numpad%d", k-VKNumpad0)
	case k >= VKF1 && k <= VKF24:
		return fmt.Sprintf("F%d", k-VKF1+1)
	}
	if name, ok := virtualKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("VK(0x%02X)", uint8(k))
}

// KeyName renders a raw key code for logs. Codes outside the key space are
// shown numerically.
func KeyName(code uint32) string {
	if code >= KeyCount {
		return fmt.Sprintf("Key(%d)", code)
	}
	return VirtualKey(code).String()
}
