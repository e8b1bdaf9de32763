// Package config holds the settings of the ledit demo and of programs that
// want file or environment driven editor settings.
//
// Settings are layered, lowest priority first:
//
//  1. built-in defaults
//  2. a TOML or YAML file (optional; a missing file is not an error)
//  3. LEDIT_* environment variables
//
// The merged map is decoded into a typed Config and validated:
//
//	cfg, err := config.Load(config.WithFile("ledit.toml"))
//	if err != nil {
//	    return err
//	}
//
// Example TOML file:
//
//	prompt = "ledit$ "
//	maxLineLength = 255
//
//	[highlight]
//	highlighter = "words"
//	palette = ["#ff5555", "#50fa7b", "teal"]
//
//	[log]
//	level = "debug"
//	file = "/tmp/ledit.log"
package config
