package settings

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"
)

const (
	DefaultPort = 8888
	FileName    = "jerry_client.toml"
)

var (
	ErrNoServer        = errors.New("no server selected")
	ErrUnknownServer   = errors.New("unknown server")
	ErrDuplicateServer = errors.New("server name already in use")
)

type Configuration struct {
	Client     Client     `toml:"client"`
	Connection Connection `toml:"connection"`
	Servers    []Server   `toml:"servers"`
}

type Client struct {
	Name        string `toml:"name"`
	DefaultGUID string `toml:"default_guid"`
}

type Connection struct {
	// Port is offered as the default when a server is added.
	Port uint16 `toml:"port"`
	// Previous names the server used last.
	Previous string `toml:"previous,omitempty"`
	// Confirm asks for the server on every start instead of reusing Previous.
	Confirm bool `toml:"confirm"`
}

type Server struct {
	Name     string     `toml:"name"`
	IP       netip.Addr `toml:"ip"`
	Port     uint16     `toml:"port"`
	Password string     `toml:"password"`
	GUID     string     `toml:"guid,omitempty"`
}

// Validate checks the ranges the server side expects: registered ports for
// the default, any non-privileged port for servers and passwords of at least
// four characters.
func (c *Configuration) Validate() error {
	if strings.TrimSpace(c.Client.Name) == "" {
		return fmt.Errorf("client.name is empty")
	}
	if c.Connection.Port < 1024 || c.Connection.Port > 49151 {
		return fmt.Errorf("connection.port %d: must be in 1024..49151", c.Connection.Port)
	}
	seen := make(map[string]struct{}, len(c.Servers))
	for i, s := range c.Servers {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("servers[%d]: %w", i, err)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("servers[%d]: %w: %q", i, ErrDuplicateServer, s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}

func (s Server) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("name is empty")
	}
	if !s.IP.IsValid() {
		return fmt.Errorf("server %q: ip is not set", s.Name)
	}
	if s.Port < 1024 {
		return fmt.Errorf("server %q: port %d must be in 1024..65535", s.Name, s.Port)
	}
	if len(s.Password) < 4 {
		return fmt.Errorf("server %q: password must be at least 4 characters", s.Name)
	}
	return nil
}

func (s Server) AddrPort() netip.AddrPort {
	return netip.AddrPortFrom(s.IP, s.Port)
}

// ConnectWithoutConfirmation reports whether the previous server is used
// without asking.
func (c *Configuration) ConnectWithoutConfirmation() bool {
	return !c.Connection.Confirm
}

func (c *Configuration) Server(name string) (Server, bool) {
	for _, s := range c.Servers {
		if s.Name == name {
			return s, true
		}
	}
	return Server{}, false
}

func (c *Configuration) ServerNames() []string {
	names := make([]string, 0, len(c.Servers))
	for _, s := range c.Servers {
		names = append(names, s.Name)
	}
	return names
}

// AddServer appends s and makes it the previous server.
func (c *Configuration) AddServer(s Server) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, exists := c.Server(s.Name); exists {
		return fmt.Errorf("%w: %q", ErrDuplicateServer, s.Name)
	}
	c.Servers = append(c.Servers, s)
	c.Connection.Previous = s.Name
	return nil
}

func (c *Configuration) UpdateLast(name string) error {
	if _, ok := c.Server(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownServer, name)
	}
	c.Connection.Previous = name
	return nil
}

// LastServer returns the previous server with its GUID defaulted to the
// client's.
func (c *Configuration) LastServer() (Server, error) {
	if c.Connection.Previous == "" {
		return Server{}, ErrNoServer
	}
	s, ok := c.Server(c.Connection.Previous)
	if !ok {
		return Server{}, fmt.Errorf("%w: %q", ErrUnknownServer, c.Connection.Previous)
	}
	if s.GUID == "" {
		s.GUID = c.Client.DefaultGUID
	}
	return s, nil
}
