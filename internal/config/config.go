package config

import (
	"errors"
	"fmt"

	"github.com/dshills/ledit/internal/config/loader"
	"github.com/dshills/ledit/internal/logging"
	"github.com/dshills/ledit/internal/renderer/highlight"
)

// Limits enforced by Validate.
const (
	MaxLineLengthLimit = 64 * 1024
	MinReadSize        = 8
	MaxReadSize        = 64 * 1024
)

// Config is the typed editor configuration.
type Config struct {
	// Prompt is written before the line.
	Prompt string
	// PromptWidth is the prompt's column width; 0 measures it.
	PromptWidth int
	// MaxLineLength bounds the line in bytes.
	MaxLineLength int
	// ReadSize is the size of one terminal read.
	ReadSize int

	Highlight HighlightConfig
	Log       LogConfig
}

// HighlightConfig selects and configures the highlighter.
type HighlightConfig struct {
	// Highlighter is one of plain, words, theme or lua.
	Highlighter string
	// Palette lists colors ("#rrggbb" or names) for words and lua.
	Palette []string
	// TrueColor writes RGB colors as 24-bit sequences.
	TrueColor bool
	// Script is the Lua file for the lua highlighter.
	Script string
	// Function is the Lua function to call; defaults to "highlight".
	Function string
	// Colors overrides theme token colors by token name.
	Colors map[string]string
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string
	// File receives logs; empty disables logging.
	File string
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := FromMap(defaultMap())
	if err != nil {
		panic("config: invalid defaults: " + err.Error())
	}
	return cfg
}

func defaultMap() map[string]any {
	return map[string]any{
		"prompt":        "ledit$ ",
		"promptWidth":   0,
		"maxLineLength": 255,
		"readSize":      255,
		"highlight": map[string]any{
			"highlighter": "words",
			"trueColor":   false,
			"function":    highlight.DefaultLuaFunction,
		},
		"log": map[string]any{
			"level": "info",
		},
	}
}

// Option configures Load.
type Option func(*options)

type options struct {
	fs        loader.FileSystem
	file      string
	envPrefix string
	env       bool
}

// WithFile layers a TOML or YAML file over the defaults.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithFS reads files through fs instead of the OS.
func WithFS(fs loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithEnvPrefix changes the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithoutEnv skips environment overrides.
func WithoutEnv() Option {
	return func(o *options) {
		o.env = false
	}
}

// Load merges defaults, the optional file and the environment, then decodes
// and validates the result.
func Load(opts ...Option) (*Config, error) {
	o := options{
		fs:        loader.DefaultFS(),
		envPrefix: loader.DefaultEnvPrefix,
		env:       true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	merged := defaultMap()

	if o.file != "" {
		fl, err := loader.ForPath(o.fs, o.file)
		if err != nil {
			return nil, err
		}
		data, err := fl.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, data)
	}

	if o.env {
		data, err := loader.NewEnvLoader(o.envPrefix).Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, data)
	}

	cfg, err := FromMap(merged)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromMap decodes a configuration map. Missing settings are left zero.
func FromMap(m map[string]any) (*Config, error) {
	d := decoder{m: m}
	cfg := &Config{
		Prompt:        d.getString("prompt"),
		PromptWidth:   d.getInt("promptWidth"),
		MaxLineLength: d.getInt("maxLineLength"),
		ReadSize:      d.getInt("readSize"),
		Highlight: HighlightConfig{
			Highlighter: d.getString("highlight.highlighter"),
			Palette:     d.getStringSlice("highlight.palette"),
			TrueColor:   d.getBool("highlight.trueColor"),
			Script:      d.getString("highlight.script"),
			Function:    d.getString("highlight.function"),
			Colors:      d.getStringMap("highlight.colors"),
		},
		Log: LogConfig{
			Level: d.getString("log.level"),
			File:  d.getString("log.file"),
		},
	}
	if len(d.errs) > 0 {
		return nil, errors.Join(d.errs...)
	}
	return cfg, nil
}

// Validate checks ranges and names. All failures are reported, joined.
func (c *Config) Validate() error {
	var errs []error
	fail := func(path, msg string, value any, code ValidationErrorCode) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value, Code: code})
	}

	if c.PromptWidth < 0 {
		fail("promptWidth", "must not be negative", c.PromptWidth, ErrCodeOutOfRange)
	}
	if c.MaxLineLength < 1 || c.MaxLineLength > MaxLineLengthLimit {
		fail("maxLineLength", fmt.Sprintf("must be between 1 and %d", MaxLineLengthLimit), c.MaxLineLength, ErrCodeOutOfRange)
	}
	if c.ReadSize < MinReadSize || c.ReadSize > MaxReadSize {
		fail("readSize", fmt.Sprintf("must be between %d and %d", MinReadSize, MaxReadSize), c.ReadSize, ErrCodeOutOfRange)
	}

	if !highlight.IsKnown(c.Highlight.Highlighter) {
		fail("highlight.highlighter", fmt.Sprintf("must be one of %v", highlight.Names), c.Highlight.Highlighter, ErrCodeInvalidEnum)
	}
	if c.Highlight.Highlighter == "lua" && c.Highlight.Script == "" {
		fail("highlight.script", "required by the lua highlighter", c.Highlight.Script, ErrCodeRequiredMissing)
	}
	for _, spec := range c.Highlight.Palette {
		if _, err := highlight.ParseColor(spec); err != nil {
			fail("highlight.palette", err.Error(), spec, ErrCodeInvalidValue)
		}
	}
	if len(c.Highlight.Colors) > 0 {
		if err := highlight.DefaultTheme().SetColors(c.Highlight.Colors); err != nil {
			fail("highlight.colors", err.Error(), c.Highlight.Colors, ErrCodeInvalidValue)
		}
	}

	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		fail("log.level", "must be debug, info, warn or error", c.Log.Level, ErrCodeInvalidEnum)
	}

	return errors.Join(errs...)
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}
