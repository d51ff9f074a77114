// Package config loads optional CLI defaults from a bigint.toml file found
// in the working directory or any of its parents.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file the loader searches for.
const FileName = "bigint.toml"

// Config holds CLI defaults. Flags override it.
type Config struct {
	Output OutputConfig `toml:"output"`
	REPL   REPLConfig   `toml:"repl"`
}

// OutputConfig controls rendering defaults.
type OutputConfig struct {
	// Color is one of auto, on, off.
	Color string `toml:"color"`
}

// REPLConfig controls the interactive session.
type REPLConfig struct {
	Prompt string `toml:"prompt"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Output: OutputConfig{Color: "auto"},
		REPL:   REPLConfig{Prompt: "> "},
	}
}

// Find walks from startDir toward the filesystem root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes the nearest configuration file. A missing file is
// not an error: defaults are returned with an empty path.
func Load(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Default(), "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := decodeFile(path)
	if err != nil {
		return Default(), path, err
	}
	return cfg, path, nil
}

func decodeFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("output", "color") {
		switch strings.TrimSpace(strings.ToLower(cfg.Output.Color)) {
		case "auto", "on", "off":
			cfg.Output.Color = strings.TrimSpace(strings.ToLower(cfg.Output.Color))
		default:
			return Config{}, fmt.Errorf("%s: invalid [output].color %q (expected auto|on|off)", path, cfg.Output.Color)
		}
	}
	if meta.IsDefined("repl", "prompt") && cfg.REPL.Prompt == "" {
		return Config{}, fmt.Errorf("%s: [repl].prompt must not be empty", path)
	}
	return cfg, nil
}
