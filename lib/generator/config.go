package generator

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file looked up by the CLI.
const DefaultConfigFile = "wcmp.yaml"

// Config controls what the generator scans and writes.
type Config struct {
	// Tag is the struct tag key holding decorator declarations.
	Tag string `yaml:"tag"`
	// Suffix is appended to the source file's base name for output files.
	Suffix string `yaml:"suffix"`
	// SkipDirs are directory names never descended into by ./... patterns.
	SkipDirs []string `yaml:"skip_dirs"`
	// ImportPath is the runtime package imported by generated code.
	ImportPath string `yaml:"import_path"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Tag:        "wc",
		Suffix:     "_wc.go",
		SkipDirs:   []string{"vendor", "testdata", "node_modules"},
		ImportPath: "github.com/pthm/wcmp",
	}
}

// LoadConfig reads a YAML config file. A missing file yields the defaults;
// fields absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that the config can drive generation.
func (c Config) Validate() error {
	if c.Tag == "" {
		return errors.New("config: tag must not be empty")
	}
	if !strings.HasSuffix(c.Suffix, ".go") || c.Suffix == ".go" {
		return fmt.Errorf("config: suffix %q would overwrite sources", c.Suffix)
	}
	if c.ImportPath == "" {
		return errors.New("config: import_path must not be empty")
	}
	return nil
}
