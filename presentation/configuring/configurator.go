package configuring

import (
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"jerry/infrastructure/settings"
	"jerry/presentation/bubble_tea"
)

const addOption = "[*] Create new record"

// ErrUserExit is returned when the user leaves a prompt without choosing.
var ErrUserExit = bubble_tea.ErrCancelled

// Prompter asks the user to choose or type something.
type Prompter interface {
	Select(title string, options []string, def int) (int, error)
	Input(title, initial string, validate func(string) error) (string, error)
}

// Configurator picks the server to connect to, optionally recording a new
// one, and marks it as previous in the configuration.
type Configurator struct {
	prompter Prompter
}

func NewConfigurator(prompter Prompter) *Configurator {
	return &Configurator{prompter: prompter}
}

func (c *Configurator) Configure(cfg *settings.Configuration) error {
	names := cfg.ServerNames()
	def := 0
	for i, name := range names {
		if name == cfg.Connection.Previous {
			def = i
		}
	}

	options := append(append([]string{}, names...), addOption)
	choice, err := c.prompter.Select("Select a server and press [ENTER]. Press [ESC]/[Q] to exit.", options, def)
	if err != nil {
		return err
	}
	if choice < len(names) {
		return cfg.UpdateLast(names[choice])
	}

	server, err := c.newServer(cfg)
	if err != nil {
		return err
	}
	return cfg.AddServer(server)
}

func (c *Configurator) newServer(cfg *settings.Configuration) (settings.Server, error) {
	name, err := c.prompter.Input("Name:", "", func(v string) error {
		if strings.TrimSpace(v) == "" {
			return errors.New("name is required")
		}
		if _, exists := cfg.Server(v); exists {
			return fmt.Errorf("server name must be unique. The following values are already in use: %s",
				strings.Join(cfg.ServerNames(), ", "))
		}
		return nil
	})
	if err != nil {
		return settings.Server{}, err
	}

	ipText, err := c.prompter.Input("IP address, e.g. 192.168.1.66:", "", func(v string) error {
		_, err := parseIPv4(v)
		return err
	})
	if err != nil {
		return settings.Server{}, err
	}
	ip, _ := parseIPv4(ipText)

	portText, err := c.prompter.Input("Port:", strconv.Itoa(int(cfg.Connection.Port)), func(v string) error {
		_, err := parsePort(v)
		return err
	})
	if err != nil {
		return settings.Server{}, err
	}
	port, _ := parsePort(portText)

	password, err := c.prompter.Input("Password:", "", func(v string) error {
		if len(v) < 4 {
			return errors.New("password must be at least 4 characters")
		}
		return nil
	})
	if err != nil {
		return settings.Server{}, err
	}

	return settings.Server{
		Name:     strings.TrimSpace(name),
		IP:       ip,
		Port:     port,
		Password: password,
	}, nil
}

func parseIPv4(v string) (netip.Addr, error) {
	ip, err := netip.ParseAddr(strings.TrimSpace(v))
	if err != nil {
		return netip.Addr{}, err
	}
	if !ip.Is4() {
		return netip.Addr{}, fmt.Errorf("%s is not an IPv4 address", ip)
	}
	return ip, nil
}

func parsePort(v string) (uint16, error) {
	port, err := strconv.ParseUint(strings.TrimSpace(v), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid port: %w", err)
	}
	if port < 1024 {
		return 0, fmt.Errorf("port %d must be in 1024..65535", port)
	}
	return uint16(port), nil
}
