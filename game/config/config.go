package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wricardo/mcp-training/marsrover/internal/ctxlog"
)

// Environment variables read by ApplyEnv
const (
	EnvDebug      = "MARSROVER_DEBUG"
	EnvCollisions = "MARSROVER_COLLISIONS"
	EnvLogLevel   = "MARSROVER_LOG_LEVEL"
	EnvLogFormat  = "MARSROVER_LOG_FORMAT"
	EnvNoColor    = "NO_COLOR"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// LogSettings selects the structured logger
type LogSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Settings is the resolved simulator configuration
type Settings struct {
	Debug      bool        `yaml:"debug"`      // print full error chains
	Collisions bool        `yaml:"collisions"` // reject moves onto occupied cells
	Color      bool        `yaml:"color"`
	Log        LogSettings `yaml:"log"`
}

// Default returns the built-in settings
func Default() *Settings {
	return &Settings{
		Collisions: true,
		Color:      true,
		Log: LogSettings{
			Level:  "warn",
			Format: ctxlog.FormatText,
		},
	}
}

// Load reads a YAML settings file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// ApplyEnv overrides settings from environment variables found by lookup
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDebug); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvDebug, v)
		}
		s.Debug = debug
	}

	if v, ok := lookup(EnvCollisions); ok {
		collisions, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvCollisions, v)
		}
		s.Collisions = collisions
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		s.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		s.Log.Format = v
	}

	// https://no-color.org: any non-empty value disables color
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		s.Color = false
	}

	return s.Validate()
}

// Validate checks log level and format names
func (s *Settings) Validate() error {
	if _, err := ctxlog.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	switch strings.ToLower(s.Log.Format) {
	case ctxlog.FormatText, ctxlog.FormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q (valid: text, json)", ErrInvalidConfig, s.Log.Format)
	}

	return nil
}
