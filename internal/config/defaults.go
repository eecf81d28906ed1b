package config

import (
	_ "embed"
)

//go:embed defaults/bingo.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Generation: GenerationConfig{
			Catalog:     "meet_me_in_st_louis",
			Cards:       10,
			WinAt:       20,
			MaxAttempts: 100,
		},
		Output: OutputConfig{
			Dir:    ".",
			Prefix: "bingo_cards",
			Format: "html",
			Key:    true,
		},
		Render: RenderConfig{
			Headless:    true,
			Snowflakes:  15,
			PaperWidth:  8.5,
			PaperHeight: 11,
			TimeoutSec:  60,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
