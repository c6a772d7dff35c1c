package emulator

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"jerry/application/emulation"
	"jerry/domain/input"
	"jerry/infrastructure/PAL/exec_commander"
)

const (
	xdotool = "xdotool"
	// wheelStep is the accumulated wheel delta that produces one click.
	wheelStep = 30
)

// X button numbers for left, right, middle, forward and back.
var xButtons = [input.ButtonCount]string{"1", "3", "2", "8", "9"}

// XdotoolEmulator injects events on X11 through the xdotool binary.
type XdotoolEmulator struct {
	commander exec_commander.Commander

	mu     sync.Mutex
	wheelX int32
	wheelY int32
}

func NewXdotoolEmulator(commander exec_commander.Commander) *XdotoolEmulator {
	return &XdotoolEmulator{commander: commander}
}

func (e *XdotoolEmulator) run(args ...string) error {
	if err := e.commander.Run(xdotool, args...); err != nil {
		return emulation.Failed(err)
	}
	return nil
}

func (e *XdotoolEmulator) MouseMoveRel(dx, dy int32) error {
	return e.run("mousemove_relative", "--", itoa(dx), itoa(dy))
}

func (e *XdotoolEmulator) MouseMoveTo(x, y int32) error {
	return e.run("mousemove", itoa(x), itoa(y))
}

func (e *XdotoolEmulator) Cursor() (int32, int32, error) {
	out, err := e.commander.Output(xdotool, "getmouselocation", "--shell")
	if err != nil {
		return 0, 0, emulation.Failed(err)
	}
	values, err := parseShellVars(out, "X", "Y")
	if err != nil {
		return 0, 0, emulation.PlatformError("getmouselocation", err)
	}
	return values[0], values[1], nil
}

func (e *XdotoolEmulator) DisplaySize() (int32, int32, error) {
	out, err := e.commander.Output(xdotool, "getdisplaygeometry")
	if err != nil {
		return 0, 0, emulation.Failed(err)
	}
	fields := strings.Fields(string(out))
	if len(fields) != 2 {
		return 0, 0, emulation.PlatformError("getdisplaygeometry", fmt.Errorf("unexpected output %q", out))
	}
	w, wErr := strconv.ParseInt(fields[0], 10, 32)
	h, hErr := strconv.ParseInt(fields[1], 10, 32)
	if wErr != nil || hErr != nil {
		return 0, 0, emulation.PlatformError("getdisplaygeometry", fmt.Errorf("unexpected output %q", out))
	}
	return int32(w), int32(h), nil
}

func (e *XdotoolEmulator) MouseUp(button input.Button) error {
	if !button.Valid() {
		return emulation.ErrDiscarded
	}
	return e.run("mouseup", xButtons[button])
}

func (e *XdotoolEmulator) MouseDown(button input.Button) error {
	if !button.Valid() {
		return emulation.ErrDiscarded
	}
	return e.run("mousedown", xButtons[button])
}

// MouseWheel accumulates deltas per axis and clicks once per wheelStep, so
// high-resolution wheels do not scroll faster than notched ones.
func (e *XdotoolEmulator) MouseWheel(direction input.Direction, amount float32) error {
	e.mu.Lock()
	acc := &e.wheelY
	positive, negative := "4", "5"
	if direction.Horizontal() {
		acc = &e.wheelX
		positive, negative = "7", "6"
	}
	*acc += int32(amount)
	var clicks []string
	for *acc > wheelStep || *acc < -wheelStep {
		if *acc > 0 {
			clicks = append(clicks, positive)
			*acc -= wheelStep
		} else {
			clicks = append(clicks, negative)
			*acc += wheelStep
		}
	}
	e.mu.Unlock()

	for _, button := range clicks {
		if err := e.run("click", button); err != nil {
			return err
		}
	}
	return nil
}

func (e *XdotoolEmulator) KeyDown(code uint32) error {
	sym, ok := keysym(code)
	if !ok {
		return emulation.Unable(fmt.Sprintf("no keysym for %s", input.KeyName(code)))
	}
	return e.run("keydown", sym)
}

func (e *XdotoolEmulator) KeyUp(code uint32) error {
	sym, ok := keysym(code)
	if !ok {
		return emulation.Unable(fmt.Sprintf("no keysym for %s", input.KeyName(code)))
	}
	return e.run("keyup", sym)
}

func itoa(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// parseShellVars reads KEY=VALUE lines and returns the integer values of keys
// in order.
func parseShellVars(out []byte, keys ...string) ([]int32, error) {
	found := make(map[string]int32, len(keys))
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		name, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok {
			continue
		}
		v, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			continue
		}
		found[name] = int32(v)
	}
	values := make([]int32, len(keys))
	for i, key := range keys {
		v, ok := found[key]
		if !ok {
			return nil, fmt.Errorf("missing %s in %q", key, out)
		}
		values[i] = v
	}
	return values, nil
}
