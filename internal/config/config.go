// Package config provides YAML-based configuration loading for the bingo
// card generator, with environment overrides.
package config

// Config contains all settings for card generation and output.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Output     OutputConfig     `yaml:"output"`
	Render     RenderConfig     `yaml:"render"`
	Log        LogConfig        `yaml:"log"`
	CatalogDir string           `yaml:"catalog_dir" env:"BINGO_CATALOG_DIR"`
}

// GenerationConfig defines how cards are engineered.
type GenerationConfig struct {
	Catalog     string `yaml:"catalog" env:"BINGO_CATALOG"`
	Cards       int    `yaml:"cards" env:"BINGO_CARDS"`
	WinAt       int    `yaml:"win_at" env:"BINGO_WIN_AT"`
	MaxAttempts int    `yaml:"max_attempts" env:"BINGO_MAX_ATTEMPTS"`
	Seed        uint64 `yaml:"seed" env:"BINGO_SEED"` // 0 = time based
}

// OutputConfig defines where and how cards are written.
type OutputConfig struct {
	Dir    string `yaml:"dir" env:"BINGO_OUTPUT_DIR"`
	Prefix string `yaml:"prefix" env:"BINGO_OUTPUT_PREFIX"`
	Format string `yaml:"format" env:"BINGO_OUTPUT_FORMAT"` // html, pdf or text
	Split  bool   `yaml:"split" env:"BINGO_OUTPUT_SPLIT"`
	Key    bool   `yaml:"key" env:"BINGO_OUTPUT_KEY"`
}

// RenderConfig defines printing parameters.
type RenderConfig struct {
	ChromeBin   string  `yaml:"chrome_bin" env:"BINGO_CHROME_BIN"`
	Headless    bool    `yaml:"headless" env:"BINGO_HEADLESS"`
	Snowflakes  int     `yaml:"snowflakes" env:"BINGO_SNOWFLAKES"`
	PaperWidth  float64 `yaml:"paper_width"`  // inches
	PaperHeight float64 `yaml:"paper_height"` // inches
	TimeoutSec  int     `yaml:"timeout_sec" env:"BINGO_RENDER_TIMEOUT"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level string `yaml:"level" env:"BINGO_LOG_LEVEL"`
}

// Formats lists the supported output formats.
var Formats = []string{"html", "pdf", "text"}

// ValidFormat reports whether f is a supported output format.
func ValidFormat(f string) bool {
	for _, v := range Formats {
		if v == f {
			return true
		}
	}
	return false
}
