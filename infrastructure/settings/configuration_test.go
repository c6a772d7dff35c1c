package settings

import (
	"errors"
	"net/netip"
	"strings"
	"testing"

	"jerry/domain/session"
)

func validConfiguration() *Configuration {
	return &Configuration{
		Client:     Client{Name: "desk", DefaultGUID: "8a4c9d2e-6f5b-4e3a-9c1d-7b2a0f4e6d8c"},
		Connection: Connection{Port: DefaultPort, Confirm: true},
		Servers: []Server{
			{Name: "office", IP: netip.MustParseAddr("192.168.1.66"), Port: 8888, Password: "2002"},
			{Name: "local", IP: netip.MustParseAddr("127.0.0.1"), Port: 9000, Password: "test", GUID: "custom"},
		},
	}
}

func TestConfiguration_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Configuration)
		want   string
	}{
		{"valid", func(c *Configuration) {}, ""},
		{"empty client name", func(c *Configuration) { c.Client.Name = " " }, "client.name"},
		{"default port too low", func(c *Configuration) { c.Connection.Port = 80 }, "connection.port"},
		{"default port dynamic range", func(c *Configuration) { c.Connection.Port = 50000 }, "connection.port"},
		{"server without ip", func(c *Configuration) { c.Servers[0].IP = netip.Addr{} }, "ip is not set"},
		{"server privileged port", func(c *Configuration) { c.Servers[0].Port = 22 }, "port 22"},
		{"short password", func(c *Configuration) { c.Servers[0].Password = "abc" }, "password"},
		{"duplicate name", func(c *Configuration) { c.Servers[1].Name = "office" }, "already in use"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfiguration()
			tc.mutate(c)
			err := c.Validate()
			if tc.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestConfiguration_LastServer(t *testing.T) {
	c := validConfiguration()
	if _, err := c.LastServer(); !errors.Is(err, ErrNoServer) {
		t.Fatalf("expected ErrNoServer, got %v", err)
	}

	c.Connection.Previous = "missing"
	if _, err := c.LastServer(); !errors.Is(err, ErrUnknownServer) {
		t.Fatalf("expected ErrUnknownServer, got %v", err)
	}

	if err := c.UpdateLast("office"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := c.LastServer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.GUID != c.Client.DefaultGUID {
		t.Fatalf("expected default guid, got %q", s.GUID)
	}

	_ = c.UpdateLast("local")
	s, _ = c.LastServer()
	if s.GUID != "custom" {
		t.Fatalf("expected server guid to win, got %q", s.GUID)
	}
}

func TestConfiguration_AddServer(t *testing.T) {
	c := validConfiguration()
	err := c.AddServer(Server{Name: "office", IP: netip.MustParseAddr("10.0.0.1"), Port: 8888, Password: "pass"})
	if !errors.Is(err, ErrDuplicateServer) {
		t.Fatalf("expected ErrDuplicateServer, got %v", err)
	}
	if err := c.AddServer(Server{Name: "lab", IP: netip.MustParseAddr("10.0.0.1"), Port: 8888, Password: "x"}); err == nil {
		t.Fatal("expected password validation error")
	}
	if err := c.AddServer(Server{Name: "lab", IP: netip.MustParseAddr("10.0.0.1"), Port: 8888, Password: "pass"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Connection.Previous != "lab" {
		t.Fatalf("expected lab to become previous, got %q", c.Connection.Previous)
	}
	if got := strings.Join(c.ServerNames(), ","); got != "office,local,lab" {
		t.Fatalf("unexpected names %q", got)
	}
}

func TestUpdateLast_Unknown(t *testing.T) {
	if err := validConfiguration().UpdateLast("nope"); !errors.Is(err, ErrUnknownServer) {
		t.Fatalf("expected ErrUnknownServer, got %v", err)
	}
}

func TestSessionParams_EmulationRule(t *testing.T) {
	c := validConfiguration()
	remote, _ := c.Server("office")
	local, _ := c.Server("local")

	p := SessionParams(c, remote, session.DisplayLogging, false)
	if !p.EmulateEvents {
		t.Fatal("remote server must emulate events")
	}
	if p.ClientGUID != c.Client.DefaultGUID || p.Addr.String() != "192.168.1.66:8888" {
		t.Fatalf("unexpected params: %+v", p)
	}
	if !p.Monitor.Dynamic {
		t.Fatal("configured servers use the dynamic monitor")
	}

	p = SessionParams(c, local, session.DisplayCurrentState, false)
	if p.EmulateEvents {
		t.Fatal("loopback server must not emulate events by default")
	}
	if p.ClientGUID != "custom" {
		t.Fatalf("expected server guid, got %q", p.ClientGUID)
	}
	if !SessionParams(c, local, session.DisplayLogging, true).EmulateEvents {
		t.Fatal("emulate flag must force emulation")
	}
}

func TestLocalhostParams(t *testing.T) {
	p := LocalhostParams(LocalhostArgs{Name: "mock", GUID: "g", Port: 8888, Width: 800, Height: 600, Password: "2002"})
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.EmulateEvents || p.Monitor.Dynamic || p.Monitor.Static.Width != 800 || p.Addr.String() != "127.0.0.1:8888" {
		t.Fatalf("unexpected params: %+v", p)
	}
}
