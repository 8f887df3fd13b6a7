// Package config loads decint.toml, the optional per-directory settings
// file for the decint CLI.
//
//	[output]
//	color = "auto"   # auto|on|off
//	format = "text"  # text|json|msgpack
//
//	[batch]
//	jobs = 0         # 0 = GOMAXPROCS
//
//	[trace]
//	level = "off"    # off|error|phase|detail|debug
//	output = "-"     # "-" is stderr
//	mode = "stream"  # stream|ring|both
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"decint/internal/trace"
)

// FileName is the settings file looked up by Find.
const FileName = "decint.toml"

// Config is the decoded settings file.
type Config struct {
	Output OutputConfig `toml:"output"`
	Batch  BatchConfig  `toml:"batch"`
	Trace  TraceConfig  `toml:"trace"`

	// Path is the file the values came from, empty for defaults.
	Path string `toml:"-"`
}

type OutputConfig struct {
	Color  string `toml:"color"`
	Format string `toml:"format"`
}

type BatchConfig struct {
	Jobs int `toml:"jobs"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
	Mode   string `toml:"mode"`
}

// Default returns the settings used when no file is found.
func Default() Config {
	return Config{
		Output: OutputConfig{Color: "auto", Format: "text"},
		Trace:  TraceConfig{Level: "off", Output: "-", Mode: "stream"},
	}
}

// Find walks up from startDir to locate decint.toml.
func Find(startDir string) (path string, ok bool, err error) {
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

// Load decodes path over the defaults and validates the result.
// Keys the schema does not know are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("batch", "jobs") && cfg.Batch.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [batch].jobs must be >= 0, got %d", path, cfg.Batch.Jobs)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Discover loads the nearest decint.toml above startDir, or the defaults
// when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	if _, err := ParseColor(c.Output.Color); err != nil {
		return fmt.Errorf("[output].color: %w", err)
	}
	if _, err := ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("[output].format: %w", err)
	}
	if c.Batch.Jobs < 0 {
		return fmt.Errorf("[batch].jobs must be >= 0, got %d", c.Batch.Jobs)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	if _, err := trace.ParseMode(c.Trace.Mode); err != nil {
		return fmt.Errorf("[trace].mode: %w", err)
	}
	return nil
}
