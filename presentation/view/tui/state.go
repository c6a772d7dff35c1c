package tui

import (
	"slices"

	"jerry/application/command"
	"jerry/domain/connection"
	"jerry/domain/input"
)

// pauseCycles is how many draw ticks are skipped after a connection state
// change so the new state stays readable.
const pauseCycles = 10

// dashboard is everything the view shows, folded from the command stream.
type dashboard struct {
	connection   connection.State
	monitorW     int32
	monitorH     int32
	cursorX      int32
	cursorY      int32
	active       bool
	relativeMove bool
	keys         []uint32
	wheel        rune
	buttons      int
	heart        int
	pause        int
}

func newDashboard(monitorW, monitorH int32) dashboard {
	return dashboard{
		connection: connection.NewState(connection.None),
		monitorW:   monitorW,
		monitorH:   monitorH,
		wheel:      ' ',
	}
}

// apply folds cmd into the dashboard. It reports whether the view must stop
// and whether a frame should be drawn now.
func (d *dashboard) apply(cmd command.Command) (stop, draw bool) {
	switch c := cmd.(type) {
	case command.Draw:
		return false, d.tick()
	case command.Message:
		d.process(c.Msg)
	case command.MessageCorrective:
		d.process(c.Msg)
	case command.ConnectionResult:
		d.connection = c.State
		d.pause = pauseCycles
		return false, true
	case command.Halt, command.ExitWithError:
		return true, false
	}
	return false, false
}

// tick consumes one draw cycle and reports whether it may render.
func (d *dashboard) tick() bool {
	if d.pause > 0 {
		d.pause--
		return false
	}
	return true
}

func (d *dashboard) process(msg input.Message) {
	switch m := msg.(type) {
	case input.MouseMove:
		if d.relativeMove {
			d.cursorX = d.monitorW/2 + m.X
			d.cursorY = d.monitorH/2 + m.Y
		} else {
			d.cursorX, d.cursorY = m.X, m.Y
		}
	case input.Key:
		if m.State == input.Pressed {
			if !slices.Contains(d.keys, m.Code) {
				d.keys = append(d.keys, m.Code)
			}
		} else {
			d.keys = slices.DeleteFunc(d.keys, func(code uint32) bool { return code == m.Code })
		}
	case input.MouseClick:
		if m.State == input.Pressed {
			d.buttons++
		} else {
			d.buttons--
		}
	case input.MouseWheel:
		d.wheel = wheelGlyph(m.Direction)
	case input.SessionBegin:
		d.active = true
		d.relativeMove = m.RelativeMove
	case input.SessionEnd:
		d.active = false
	case input.Heartbeat:
		d.heart = 3
	}
}

func wheelGlyph(direction input.Direction) rune {
	switch direction {
	case input.ScrollUp:
		return '^'
	case input.ScrollDown:
		return 'v'
	case input.ScrollLeft:
		return '<'
	case input.ScrollRight:
		return '>'
	default:
		return ' '
	}
}
