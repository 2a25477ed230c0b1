// Package config loads the glenumgen configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file name looked up by glenumgen.
const DefaultFile = "glenumgen.yaml"

// API describes one generated enum package.
type API struct {
	Name    string `yaml:"name"`
	Prefix  string `yaml:"prefix"`
	Tables  string `yaml:"tables"`
	Output  string `yaml:"output"`
	Package string `yaml:"package"`
}

// Config is the decoded configuration file.
type Config struct {
	// Import is the import path of the core glenum package.
	Import    string `yaml:"import"`
	NamesTag  string `yaml:"names_tag"`
	RangesTag string `yaml:"ranges_tag"`
	APIs      []API  `yaml:"apis"`

	// Dir is the directory of the configuration file. Relative paths in
	// the file are resolved against it.
	Dir string `yaml:"-"`
}

// Load reads and validates the configuration stored at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	cfg.Dir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes and validates a configuration document.
func Parse(b []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	if cfg.NamesTag == "" {
		cfg.NamesTag = "glenum_nonames"
	}
	if cfg.RangesTag == "" {
		cfg.RangesTag = "glenum_noranges"
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Import == "" {
		return errors.New("missing import")
	}
	if len(c.APIs) == 0 {
		return errors.New("no apis")
	}
	seen := map[string]bool{}
	for i := range c.APIs {
		a := &c.APIs[i]
		if a.Name == "" {
			return errors.Errorf("api #%d: missing name", i+1)
		}
		if seen[a.Name] {
			return errors.Errorf("api %s: listed twice", a.Name)
		}
		seen[a.Name] = true
		if a.Tables == "" || a.Output == "" {
			return errors.Errorf("api %s: tables and output are required", a.Name)
		}
		if a.Package == "" {
			a.Package = filepath.Base(a.Output)
		}
	}
	return nil
}

// Lookup returns the API with the given name.
func (c *Config) Lookup(name string) (API, bool) {
	for _, a := range c.APIs {
		if a.Name == name {
			return a, true
		}
	}
	return API{}, false
}

// Path resolves p relative to the configuration file.
func (c *Config) Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}
