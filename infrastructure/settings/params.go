package settings

import (
	"net/netip"

	"jerry/domain/session"
)

// SessionParams builds the run parameters for server. Events are emulated
// unless the server is on the loopback interface; emulate forces them on.
func SessionParams(cfg *Configuration, server Server, mode session.DisplayMode, emulate bool) session.Params {
	guid := server.GUID
	if guid == "" {
		guid = cfg.Client.DefaultGUID
	}
	return session.Params{
		ClientName:     cfg.Client.Name,
		ClientGUID:     guid,
		ServerPassword: server.Password,
		Monitor:        session.DynamicResolution(),
		Addr:           server.AddrPort(),
		DisplayMode:    mode,
		EmulateEvents:  !server.IP.IsLoopback() || emulate,
	}
}

type LocalhostArgs struct {
	Name     string
	GUID     string
	Port     uint16
	Width    uint16
	Height   uint16
	Password string
}

// LocalhostParams describes a mock client on 127.0.0.1 with a fixed monitor
// and no event emulation.
func LocalhostParams(args LocalhostArgs) session.Params {
	return session.Params{
		ClientName:     args.Name,
		ClientGUID:     args.GUID,
		ServerPassword: args.Password,
		Monitor:        session.StaticResolution(args.Width, args.Height),
		Addr:           netip.AddrPortFrom(netip.AddrFrom4([4]byte{127, 0, 0, 1}), args.Port),
		DisplayMode:    session.DisplayCurrentState,
		EmulateEvents:  false,
	}
}
