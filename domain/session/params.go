package session

import (
	"fmt"
	"net/netip"
)

// DisplayMode selects how the outward command channel is presented.
type DisplayMode int

const (
	// DisplayLogging writes every command to the console log.
	DisplayLogging DisplayMode = iota
	// DisplayCurrentState draws the live state view.
	DisplayCurrentState
)

func (m DisplayMode) String() string {
	switch m {
	case DisplayLogging:
		return "logging"
	case DisplayCurrentState:
		return "current-state"
	default:
		return fmt.Sprintf("DisplayMode(%d)", int(m))
	}
}

// MonitorSize is a fixed screen geometry in pixels.
type MonitorSize struct {
	Width  uint16
	Height uint16
}

// ScreenResolution is either a fixed MonitorSize or dynamic, in which case the
// geometry is queried from the platform when needed.
type ScreenResolution struct {
	Static  MonitorSize
	Dynamic bool
}

func StaticResolution(width, height uint16) ScreenResolution {
	return ScreenResolution{Static: MonitorSize{Width: width, Height: height}}
}

func DynamicResolution() ScreenResolution {
	return ScreenResolution{Dynamic: true}
}

// Params is the immutable identity and configuration of one client run.
type Params struct {
	ClientName     string
	ClientGUID     string
	ServerPassword string
	Monitor        ScreenResolution
	Addr           netip.AddrPort
	DisplayMode    DisplayMode
	EmulateEvents  bool
}

func (p Params) Validate() error {
	if p.ClientName == "" {
		return fmt.Errorf("client name is empty")
	}
	if p.ClientGUID == "" {
		return fmt.Errorf("client guid is empty")
	}
	if !p.Addr.IsValid() || p.Addr.Port() == 0 {
		return fmt.Errorf("invalid server address: %q", p.Addr.String())
	}
	if !p.Monitor.Dynamic && (p.Monitor.Static.Width == 0 || p.Monitor.Static.Height == 0) {
		return fmt.Errorf("invalid monitor size %dx%d", p.Monitor.Static.Width, p.Monitor.Static.Height)
	}
	return nil
}
