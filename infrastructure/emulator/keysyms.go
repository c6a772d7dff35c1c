package emulator

import (
	"fmt"

	"jerry/domain/input"
)

var keysyms = map[input.VirtualKey]string{
	input.VKBack: "BackSpace", input.VKTab: "Tab", input.VKReturn: "Return",
	input.VKShift: "Shift_L", input.VKControl: "Control_L", input.VKMenu: "Alt_L",
	input.VKPause: "Pause", input.VKCapital: "Caps_Lock", input.VKEscape: "Escape",
	input.VKSpace: "space", input.VKPrior: "Prior", input.VKNext: "Next",
	input.VKEnd: "End", input.VKHome: "Home", input.VKLeft: "Left", input.VKUp: "Up",
	input.VKRight: "Right", input.VKDown: "Down", input.VKSnapshot: "Print",
	input.VKInsert: "Insert", input.VKDelete: "Delete", input.VKLWin: "Super_L",
	input.VKRWin: "Super_R", input.VKApps: "Menu", input.VKMultiply: "KP_Multiply",
	input.VKAdd: "KP_Add", input.VKSubtract: "KP_Subtract", input.VKDecimal: "KP_Decimal",
	input.VKDivide: "KP_Divide", input.VKNumLock: "Num_Lock", input.VKScroll: "Scroll_Lock",
	input.VKLShift: "Shift_L", input.VKRShift: "Shift_R", input.VKLControl: "Control_L",
	input.VKRControl: "Control_R", input.VKLMenu: "Alt_L", input.VKRMenu: "Alt_R",
	input.VKOem1: "semicolon", input.VKOemPlus: "equal", input.VKOemComma: "comma",
	input.VKOemMinus: "minus", input.VKOemPeriod: "period", input.VKOem2: "slash",
	input.VKOem3: "grave", input.VKOem4: "bracketleft", input.VKOem5: "backslash",
	input.VKOem6: "bracketright", input.VKOem7: "apostrophe",
}

// keysym maps a virtual-key code to the X keysym name xdotool expects.
func keysym(code uint32) (string, bool) {
	if code >= input.KeyCount {
		return "", false
	}
	k := input.VirtualKey(code)
	switch {
	case k >= input.VK0 && k <= input.VK9:
		return string(rune('0' + k - input.VK0)), true
	case k >= input.VKA && k <= input.VKZ:
		return string(rune('a' + k - input.VKA)), true
	case k >= input.VKNumpad0 && k <= input.VKNumpad9:
		return fmt.Sprintf("KP_%d", k-input.VKNumpad0), true
	case k >= input.VKF1 && k <= input.VKF24:
		return fmt.Sprintf("F%d", k-input.VKF1+1), true
	}
	name, ok := keysyms[k]
	return name, ok
}
