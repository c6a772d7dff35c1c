package tui

import (
	"fmt"
	"strings"

	"jerry/domain/connection"
	"jerry/domain/input"

	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth  = 80
	minHeight = 16
	// statusHeight is the bottom panel including its border.
	statusHeight = 6
)

const tooSmall = "Error: Terminal size is too small."

var (
	colorActive    = lipgloss.Color("2")
	colorHandshake = lipgloss.Color("12")
	colorReadError = lipgloss.Color("1")
	colorIdle      = lipgloss.Color("8")
	heartStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func (d *dashboard) color() lipgloss.Color {
	switch {
	case d.active:
		return colorActive
	case d.connection.Kind == connection.HandshakeSuccess:
		return colorHandshake
	case d.connection.Kind == connection.ReadError:
		return colorReadError
	default:
		return colorIdle
	}
}

// frame renders the dashboard for a terminal of the given size. Drawing
// advances the heartbeat blink.
func (d *dashboard) frame(width, height int) string {
	if width < minWidth || height < minHeight {
		return tooSmall
	}
	color := d.color()

	monitor := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, true).
		BorderForeground(color).
		Foreground(color).
		Render(d.monitor(width-2, height-statusHeight))

	status := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(color).
		Width(width - 2).
		Render(d.status(color))

	return lipgloss.JoinVertical(lipgloss.Left, monitor, status)
}

// monitor draws the remote cursor scaled onto a cols x rows area.
func (d *dashboard) monitor(cols, rows int) string {
	col := scale(d.cursorX, d.monitorW, cols)
	row := scale(d.cursorY, d.monitorH, rows)

	var b strings.Builder
	blank := strings.Repeat(" ", cols)
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		if r != row {
			b.WriteString(blank)
			continue
		}
		b.WriteString(blank[:col])
		b.WriteByte('O')
		b.WriteString(blank[col+1:])
	}
	return b.String()
}

func scale(value, extent int32, cells int) int {
	if extent <= 0 || cells <= 0 {
		return 0
	}
	cell := int(int64(value) * int64(cells) / int64(extent))
	return max(0, min(cell, cells-1))
}

func (d *dashboard) status(color lipgloss.Color) string {
	text := lipgloss.NewStyle().Foreground(color)

	heart := " ♥ "
	if d.heart > 0 {
		d.heart--
		if d.heart%2 == 0 {
			heart = "❤  "
		} else {
			heart = "   "
		}
	}

	names := make([]string, 0, len(d.keys))
	for _, code := range d.keys {
		names = append(names, input.KeyName(code))
	}

	return strings.Join([]string{
		heartStyle.Render(heart) + text.Render(fmt.Sprintf("Connection: %s", d.connection)),
		text.Render(fmt.Sprintf("Wheel: %c Buttons: %d", d.wheel, d.buttons)),
		"",
		text.Render("Keys pressed: " + strings.Join(names, ", ")),
	}, "\n")
}
