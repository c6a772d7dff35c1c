package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

const hint = `
#----------------------
# [[servers]]
# name       : required    must be unique
# ip         : required
# port       : required
# password   : required
#----------------------
`

// Manager loads and saves the client configuration file.
type Manager struct {
	path     string
	hostname func() (string, error)
	newGUID  func() string
}

func NewManager(path string) *Manager {
	return &Manager{
		path:     path,
		hostname: os.Hostname,
		newGUID:  uuid.NewString,
	}
}

func (m *Manager) Path() string {
	return m.path
}

// Load reads the configuration. When the file does not exist a default one is
// generated and written, and created is true.
func (m *Manager) Load() (cfg *Configuration, created bool, err error) {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = m.Default()
		if err != nil {
			return nil, false, err
		}
		if err := m.Save(cfg); err != nil {
			return nil, false, err
		}
		return cfg, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read configuration: %w", err)
	}

	cfg = &Configuration{}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, false, fmt.Errorf("configuration file %s is not valid toml: %w", m.path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, fmt.Errorf("configuration file %s is not valid: %w", m.path, err)
	}
	return cfg, false, nil
}

func (m *Manager) Save(cfg *Configuration) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	buf.WriteString(hint)

	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	if err := os.WriteFile(m.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write configuration: %w", err)
	}
	return nil
}

// Default is a configuration with no servers, named after the host and with
// a fresh GUID.
func (m *Manager) Default() (*Configuration, error) {
	name, err := m.hostname()
	if err != nil || name == "" {
		name = "jerry-client"
	}
	return &Configuration{
		Client: Client{
			Name:        name,
			DefaultGUID: m.newGUID(),
		},
		Connection: Connection{
			Port:    DefaultPort,
			Confirm: true,
		},
		Servers: []Server{},
	}, nil
}
