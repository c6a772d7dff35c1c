package session

import "runtime"

type OS int32

const (
	OSWindows OS = iota
	OSLinux
	OSMac
)

// CurrentOS reports the operating system the client runs on.
func CurrentOS() OS {
	switch runtime.GOOS {
	case "windows":
		return OSWindows
	case "darwin":
		return OSMac
	default:
		return OSLinux
	}
}

func (o OS) String() string {
	switch o {
	case OSWindows:
		return "Windows"
	case OSMac:
		return "Mac"
	default:
		return "Linux"
	}
}

// ClientInfo is the descriptor returned to the server's init-info request.
type ClientInfo struct {
	Name     string
	GUID     string
	Password string
	Width    int32
	Height   int32
	CursorX  int32
	CursorY  int32
	System   OS
}
