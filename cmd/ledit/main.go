// Package main is a small REPL that reads lines with ledit and echoes them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/ledit"
	"github.com/dshills/ledit/internal/config"
	"github.com/dshills/ledit/internal/logging"
	pluginlua "github.com/dshills/ledit/internal/plugin/lua"
	"github.com/dshills/ledit/internal/renderer/highlight"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath  string
	prompt      string
	highlighter string
	logLevel    string
	logFile     string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log: %v\n", err)
		return 1
	}
	defer closeLog()

	hl, closeHL, err := buildHighlighter(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeHL()

	ed := ledit.New(
		ledit.WithHighlighter(hl),
		ledit.WithMaxLineLength(cfg.MaxLineLength),
		ledit.WithReadSize(cfg.ReadSize),
		ledit.WithLogger(logger),
	)
	defer ed.Close()

	// Restore the terminal before the default signal action would leave it raw.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signals
		logger.Info("received %v, exiting", sig)
		ed.Close()
		fmt.Fprintln(os.Stdout)
		os.Exit(130)
	}()

	logger.Info("ledit %s started", version)
	for {
		line, err := ed.ReadLine(cfg.Prompt, cfg.PromptWidth)
		switch {
		case errors.Is(err, io.EOF):
			return 0
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("%q\n", line)
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.prompt, "prompt", "", "Prompt text (overrides config)")
	flag.StringVar(&opts.highlighter, "highlighter", "", "Highlighter: plain, words, theme or lua")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ledit - line editor demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ledit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEach accepted line is echoed quoted. Ctrl-D ends input.\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("ledit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}

// loadConfig reads the config layers and applies flag overrides on top.
func loadConfig(opts options) (*config.Config, error) {
	var loadOpts []config.Option
	if opts.configPath != "" {
		loadOpts = append(loadOpts, config.WithFile(opts.configPath))
	}
	cfg, err := config.Load(loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if opts.prompt != "" {
		cfg.Prompt = opts.prompt
		cfg.PromptWidth = 0
	}
	if opts.highlighter != "" {
		cfg.Highlight.Highlighter = opts.highlighter
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

// openLogger logs to cfg.Log.File. Without a file nothing is logged, since
// stderr is usually the terminal being edited.
func openLogger(cfg *config.Config) (*logging.Logger, func(), error) {
	if cfg.Log.File == "" {
		return logging.Discard, func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel(),
		Output: f,
		Prefix: "ledit",
	})
	return logger, func() { f.Close() }, nil
}

func buildHighlighter(cfg *config.Config, logger *logging.Logger) (ledit.Highlighter, func(), error) {
	hc := cfg.Highlight
	noop := func() {}

	switch hc.Highlighter {
	case "plain":
		return highlight.Plain, noop, nil

	case "words":
		if len(hc.Palette) == 0 {
			return highlight.NewWords(), noop, nil
		}
		colors, err := highlight.ParsePalette(hc.Palette)
		if err != nil {
			return nil, nil, err
		}
		return highlight.NewPaletteWords(colors, hc.TrueColor), noop, nil

	case "theme":
		theme := highlight.DefaultTheme()
		if err := theme.SetColors(hc.Colors); err != nil {
			return nil, nil, err
		}
		return highlight.NewThemed(theme, hc.TrueColor), noop, nil

	case "lua":
		h, err := highlight.NewLua(hc.Script, hc.Function, hc.TrueColor,
			pluginlua.WithPrintWriter(luaLogWriter{logger.WithComponent("lua")}))
		if err != nil {
			return nil, nil, err
		}
		return h, func() { h.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown highlighter %q", hc.Highlighter)
}

// luaLogWriter sends script print output to the log.
type luaLogWriter struct {
	logger *logging.Logger
}

func (w luaLogWriter) Write(p []byte) (int, error) {
	w.logger.Debug("print: %s", p)
	return len(p), nil
}
