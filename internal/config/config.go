// Package config holds the paths and markers used by genmanifest and
// prepindex, with defaults matching the front end layout and an optional
// YAML file to override them.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full configuration file.
type Config struct {
	Manifest   Manifest   `yaml:"manifest"`
	Entrypoint Entrypoint `yaml:"entrypoint"`
}

// Manifest configures genmanifest.
type Manifest struct {
	Dir    string `yaml:"dir"`
	Output string `yaml:"output"`
	Suffix string `yaml:"suffix"`
	// Strict makes an unreadable scripts directory a failure.
	Strict bool `yaml:"strict"`
}

// Entrypoint configures prepindex.
type Entrypoint struct {
	Template     string `yaml:"template"`
	Output       string `yaml:"output"`
	ModulesDir   string `yaml:"modulesDir"`
	ModuleSuffix string `yaml:"moduleSuffix"`
	SrcPrefix    string `yaml:"srcPrefix"`
	Sentinel     string `yaml:"sentinel"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Manifest: Manifest{
			Dir:    "dist/js",
			Output: "dist/files.json",
			Suffix: ".js",
		},
		Entrypoint: Entrypoint{
			Template:     "./src/web/src.html",
			Output:       "./index.html",
			ModulesDir:   "./src/web/ts/",
			ModuleSuffix: ".tsx",
			SrcPrefix:    "./src/web/ts/",
			Sentinel:     "VITE",
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %q, reason: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err = dec.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config file %q, reason: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first empty setting of the manifest section.
func (m Manifest) Validate() error {
	switch {
	case m.Dir == "":
		return fmt.Errorf("manifest dir cannot be empty")
	case m.Output == "":
		return fmt.Errorf("manifest output cannot be empty")
	case m.Suffix == "":
		return fmt.Errorf("manifest suffix cannot be empty")
	}
	return nil
}

// Validate reports the first empty setting of the entrypoint section.
// An empty SrcPrefix is allowed.
func (e Entrypoint) Validate() error {
	switch {
	case e.Template == "":
		return fmt.Errorf("entrypoint template cannot be empty")
	case e.Output == "":
		return fmt.Errorf("entrypoint output cannot be empty")
	case e.ModulesDir == "":
		return fmt.Errorf("entrypoint modulesDir cannot be empty")
	case e.ModuleSuffix == "":
		return fmt.Errorf("entrypoint moduleSuffix cannot be empty")
	case e.Sentinel == "":
		return fmt.Errorf("entrypoint sentinel cannot be empty")
	}
	return nil
}
