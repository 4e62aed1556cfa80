package figmatokens

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read from the working directory when present.
const DefaultConfigFile = ".figma-tokens.yml"

// Config is the optional YAML config file. Every field mirrors a CLI flag;
// flags set on the command line win.
type Config struct {
	Token    string      `yaml:"token"`
	URL      string      `yaml:"url"`
	Snapshot string      `yaml:"snapshot"`
	Output   string      `yaml:"output"`
	Format   string      `yaml:"format"`
	Form     string      `yaml:"form"`
	Collate  string      `yaml:"collate"`
	Title    string      `yaml:"title"`
	Serve    ServeConfig `yaml:"serve"`
}

// ServeConfig configures the plugin message loop.
type ServeConfig struct {
	// Transport is "stdio" or "socketio".
	Transport string `yaml:"transport"`
	// URL is the socket.io endpoint.
	URL       string `yaml:"url"`
	Namespace string `yaml:"namespace"`
	// Templates is a YAML file describing the canvas templates.
	Templates string `yaml:"templates"`
}

// LoadConfig reads the config file at path. A missing file at
// DefaultConfigFile yields an empty config; any other missing file is an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultConfigFile {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML config document. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := new(Config)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}
	return cfg, nil
}
