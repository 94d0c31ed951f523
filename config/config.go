// Package config loads runtime configuration from a yaml file or CLI flags.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"srsignal/internal/analyzer"
	"srsignal/internal/domain"
)

// Config is the resolved runtime configuration.
type Config struct {
	Platform     string
	Pairs        []domain.Pair
	Timeframe    string
	CandleLimit  int
	WALDir       string
	PollInterval time.Duration
	Telegram     Telegram
	Analyzer     analyzer.Config
}

// Telegram holds notification credentials. Both fields empty disables delivery.
type Telegram struct {
	Token  string
	ChatID string
}

// ConfigTmp mirrors the yaml file layout. Analyzer overrides are pointers so
// absent keys keep the defaults.
type ConfigTmp struct {
	Platform      string        `yaml:"platform"`
	Pairs         []string      `yaml:"pairs"`
	Timeframe     string        `yaml:"timeframe"`
	CandleLimit   int           `yaml:"candle_limit,omitempty"`
	WALDir        string        `yaml:"wal_dir,omitempty"`
	PollInterval  time.Duration `yaml:"poll_interval,omitempty"`
	TelegramToken string        `yaml:"telegram_token,omitempty"`
	TelegramChat  string        `yaml:"telegram_chat,omitempty"`

	RSIPeriod        *int     `yaml:"rsi_period,omitempty"`
	ATRPeriod        *int     `yaml:"atr_period,omitempty"`
	SRLookback       *int     `yaml:"sr_lookback,omitempty"`
	SRMinTouches     *int     `yaml:"sr_min_touches,omitempty"`
	ClusterThreshold *float64 `yaml:"sr_cluster_threshold,omitempty"`
	FlipThreshold    *float64 `yaml:"flip_threshold,omitempty"`
}

const (
	defaultTimeframe   = "1h"
	defaultCandleLimit = 300
	defaultPlatform    = "binance"
)

func (t ConfigTmp) resolve() (Config, error) {
	cfg := Config{
		Platform:     strings.ToLower(t.Platform),
		Timeframe:    t.Timeframe,
		CandleLimit:  t.CandleLimit,
		WALDir:       t.WALDir,
		PollInterval: t.PollInterval,
		Telegram:     Telegram{Token: t.TelegramToken, ChatID: t.TelegramChat},
		Analyzer:     analyzer.DefaultConfig(),
	}

	if cfg.Platform == "" {
		cfg.Platform = defaultPlatform
	}
	if cfg.Platform != "binance" && cfg.Platform != "bybit" {
		return Config{}, fmt.Errorf("unsupported platform %q (binance or bybit)", t.Platform)
	}
	if cfg.Timeframe == "" {
		cfg.Timeframe = defaultTimeframe
	}
	if cfg.CandleLimit <= 0 {
		cfg.CandleLimit = defaultCandleLimit
	}

	if len(t.Pairs) == 0 {
		return Config{}, fmt.Errorf("at least one pair is required")
	}
	for _, p := range t.Pairs {
		pair, err := domain.ParsePair(p)
		if err != nil {
			return Config{}, fmt.Errorf("incorrect 'pairs' entry %q: %w", p, err)
		}
		cfg.Pairs = append(cfg.Pairs, pair)
	}

	if t.RSIPeriod != nil {
		cfg.Analyzer.RSIPeriod = *t.RSIPeriod
	}
	if t.ATRPeriod != nil {
		cfg.Analyzer.ATRPeriod = *t.ATRPeriod
	}
	if t.SRLookback != nil {
		cfg.Analyzer.Levels.Lookback = *t.SRLookback
	}
	if t.SRMinTouches != nil {
		cfg.Analyzer.Levels.MinTouches = *t.SRMinTouches
	}
	if t.ClusterThreshold != nil {
		cfg.Analyzer.Levels.ClusterThreshold = *t.ClusterThreshold
	}
	if t.FlipThreshold != nil {
		cfg.Analyzer.Flip.Threshold = *t.FlipThreshold
	}

	if err := cfg.Analyzer.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid analyzer settings: %w", err)
	}

	return cfg, nil
}

func getYaml(path string) (Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var tmp ConfigTmp
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return Config{}, fmt.Errorf("failed to parse yaml config: %w", err)
	}

	return tmp.resolve()
}
