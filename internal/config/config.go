package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zappabad/tapetrader/internal/series"
)

// AssetEntry describes one tradable instrument and its series archive.
// Archive file names are deliberately opaque so participants can't guess
// the underlying instrument from the data files.
type AssetEntry struct {
	Symbol string `yaml:"symbol"`
	Kind   string `yaml:"kind"` // "stock" or "crypto"
	Path   string `yaml:"path"`
}

// Config holds all application configuration.
type Config struct {
	Assets  []AssetEntry `yaml:"assets"`
	Session struct {
		StateFile       string  `yaml:"state_file"`
		StartingBalance float64 `yaml:"starting_balance"`
	} `yaml:"session"`
	Audit struct {
		LogPath    string `yaml:"log_path"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"audit"`
	Logging struct {
		Path  string `yaml:"path"`
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine; defaults carry it.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TAPETRADER_STATE_FILE"); v != "" {
		cfg.Session.StateFile = v
	}
	if v := os.Getenv("TAPETRADER_AUDIT_LOG"); v != "" {
		cfg.Audit.LogPath = v
	}
	if v := os.Getenv("TAPETRADER_SQLITE_PATH"); v != "" {
		cfg.Audit.SQLitePath = v
	}
	if v := os.Getenv("TAPETRADER_LOG_PATH"); v != "" {
		cfg.Logging.Path = v
	}
	if v := os.Getenv("TAPETRADER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	// Defaults
	if len(cfg.Assets) == 0 {
		cfg.Assets = defaultAssets()
	}
	if cfg.Session.StateFile == "" {
		cfg.Session.StateFile = "save.json"
	}
	if cfg.Session.StartingBalance == 0 {
		cfg.Session.StartingBalance = 1_000_000
	}
	if cfg.Audit.LogPath == "" {
		cfg.Audit.LogPath = "trades.jsonl"
	}
	if cfg.Logging.Path == "" {
		cfg.Logging.Path = "tapetrader.log"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	return cfg, nil
}

// Validate checks that every asset entry is complete and well-formed.
func (c *Config) Validate() error {
	if len(c.Assets) == 0 {
		return fmt.Errorf("at least one asset is required")
	}
	for i, a := range c.Assets {
		if a.Symbol == "" {
			return fmt.Errorf("assets[%d]: symbol is required", i)
		}
		if a.Path == "" {
			return fmt.Errorf("assets[%d] (%s): path is required", i, a.Symbol)
		}
		if _, err := series.ParseKind(a.Kind); err != nil {
			return fmt.Errorf("assets[%d] (%s): %w", i, a.Symbol, err)
		}
	}
	return nil
}

func defaultAssets() []AssetEntry {
	return []AssetEntry{
		{Symbol: "AAPL", Kind: "stock", Path: "assets/A.zip"},
		{Symbol: "AMZN", Kind: "stock", Path: "assets/B.zip"},
		{Symbol: "META", Kind: "stock", Path: "assets/C.zip"},
		{Symbol: "TSLA", Kind: "stock", Path: "assets/D.zip"},
		{Symbol: "TWTR", Kind: "stock", Path: "assets/E.zip"},
		{Symbol: "BTC", Kind: "crypto", Path: "assets/F.zip"},
		{Symbol: "DOGE", Kind: "crypto", Path: "assets/G.zip"},
		{Symbol: "ETH", Kind: "crypto", Path: "assets/H.zip"},
		{Symbol: "LTC", Kind: "crypto", Path: "assets/I.zip"},
		{Symbol: "XMR", Kind: "crypto", Path: "assets/J.zip"},
	}
}
