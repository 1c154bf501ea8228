package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/dshills/xlsheet/internal/config/loader"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "XLSHEET_"

// Column width limits.
const (
	MinColumnWidth = 3
	MaxColumnWidth = 60
)

// Config holds all xlsheet settings.
type Config struct {
	Sheet   SheetConfig
	Theme   ThemeConfig
	Logging LoggingConfig
}

// SheetConfig controls the initial grid.
type SheetConfig struct {
	// Rows and Cols size the sheet created at startup.
	Rows int
	Cols int
	// ColumnWidth is the display width of each cell, in terminal columns.
	ColumnWidth int
}

// ThemeConfig holds "#rrggbb" colors. Empty values use the terminal default.
type ThemeConfig struct {
	Foreground string
	Background string
	Header     string
	Locked     string
	Editing    string
	Menu       string
	Accent     string
}

// LoggingConfig controls the log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn or error.
	Level string
	// File receives log output. Empty discards logs, since the terminal is
	// occupied by the sheet.
	File string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Sheet: SheetConfig{
			Rows:        10,
			Cols:        6,
			ColumnWidth: 10,
		},
		Theme: ThemeConfig{
			Header:  "#30475e",
			Locked:  "#1b1f24",
			Editing: "#f2a365",
			Menu:    "#222831",
			Accent:  "#dddddd",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

type loadOptions struct {
	fs     loader.FileSystem
	lookup func(string) (string, bool)
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithFileSystem reads config files through fsys.
func WithFileSystem(fsys loader.FileSystem) LoadOption {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnvLookup reads environment overrides through lookup.
func WithEnvLookup(lookup func(string) (string, bool)) LoadOption {
	return func(o *loadOptions) {
		o.lookup = lookup
	}
}

// Load resolves the configuration from defaults, the file at path (if path
// is non-empty and the file exists) and the environment.
func Load(path string, opts ...LoadOption) (*Config, error) {
	o := loadOptions{
		fs:     loader.DefaultFS(),
		lookup: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(&o)
	}

	merged := make(map[string]any)

	if path != "" {
		fileLoader, err := loader.ForPath(o.fs, path)
		if err != nil {
			return nil, err
		}
		fileMap, err := fileLoader.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, fileMap)
	}

	envMap, err := loader.NewEnvLoaderWithLookup(EnvPrefix, o.lookup).Load()
	if err != nil {
		return nil, err
	}
	merged = loader.DeepMerge(merged, envMap)

	cfg := Default()
	if err := cfg.apply(merged); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply copies known settings from m onto c. Unknown keys are ignored.
func (c *Config) apply(m map[string]any) error {
	d := decoder{data: m}

	d.readInt("sheet.rows", &c.Sheet.Rows)
	d.readInt("sheet.cols", &c.Sheet.Cols)
	d.readInt("sheet.column_width", &c.Sheet.ColumnWidth)

	d.readString("theme.foreground", &c.Theme.Foreground)
	d.readString("theme.background", &c.Theme.Background)
	d.readString("theme.header", &c.Theme.Header)
	d.readString("theme.locked", &c.Theme.Locked)
	d.readString("theme.editing", &c.Theme.Editing)
	d.readString("theme.menu", &c.Theme.Menu)
	d.readString("theme.accent", &c.Theme.Accent)

	d.readString("logging.level", &c.Logging.Level)
	d.readString("logging.file", &c.Logging.File)

	return d.err
}

// Validate checks setting ranges.
func (c *Config) Validate() error {
	if c.Sheet.Rows < 0 {
		return &ValidationError{Path: "sheet.rows", Value: c.Sheet.Rows, Message: "must not be negative"}
	}
	if c.Sheet.Cols < 0 {
		return &ValidationError{Path: "sheet.cols", Value: c.Sheet.Cols, Message: "must not be negative"}
	}
	if c.Sheet.ColumnWidth < MinColumnWidth || c.Sheet.ColumnWidth > MaxColumnWidth {
		return &ValidationError{
			Path:    "sheet.column_width",
			Value:   c.Sheet.ColumnWidth,
			Message: fmt.Sprintf("must be between %d and %d", MinColumnWidth, MaxColumnWidth),
		}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "logging.level", Value: c.Logging.Level, Message: "must be debug, info, warn, or error"}
	}
	return nil
}

// decoder reads typed values out of a nested map, keeping the first error.
type decoder struct {
	data map[string]any
	err  error
}

func (d *decoder) lookup(path string) (any, bool) {
	section, key, _ := strings.Cut(path, ".")
	sec, ok := d.data[section].(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := sec[key]
	return v, ok
}

func (d *decoder) readInt(path string, dst *int) {
	v, ok := d.lookup(path)
	if !ok || d.err != nil {
		return
	}
	switch n := v.(type) {
	case int:
		*dst = n
	case int64:
		*dst = int(n)
	case uint64:
		*dst = int(n)
	case float64:
		if n != math.Trunc(n) {
			d.err = typeError(path, "integer", v)
			return
		}
		*dst = int(n)
	default:
		d.err = typeError(path, "integer", v)
	}
}

func (d *decoder) readString(path string, dst *string) {
	v, ok := d.lookup(path)
	if !ok || d.err != nil {
		return
	}
	s, ok := v.(string)
	if !ok {
		d.err = typeError(path, "string", v)
		return
	}
	*dst = s
}
