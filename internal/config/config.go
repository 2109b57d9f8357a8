package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/vitos/crypto_trade_learner/internal/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Instruments []string `yaml:"instruments"`
	Polling     struct {
		IntervalMs     int `yaml:"interval_ms"`
		FetchTimeoutMs int `yaml:"fetch_timeout_ms"`
	} `yaml:"polling"`
	Strategy struct {
		TakeProfit        float64 `yaml:"take_profit"`
		StopLoss          float64 `yaml:"stop_loss"`
		LearningFactor    float64 `yaml:"learning_factor"`
		HistoryCap        int     `yaml:"history_cap"`
		ShortWindow       int     `yaml:"short_window"`
		LongWindow        int     `yaml:"long_window"`
		InitialBuyFactor  float64 `yaml:"initial_buy_factor"`
		InitialSellFactor float64 `yaml:"initial_sell_factor"`
	} `yaml:"strategy"`
	Exchange struct {
		RESTEndpoint string `yaml:"rest_endpoint"`
	} `yaml:"exchange"`
	Journal struct {
		LogFile string `yaml:"log_file"`
		DBPath  string `yaml:"db_path"`
	} `yaml:"journal"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
}

func Default() *Config {
	var cfg Config
	cfg.Instruments = []string{"BTC_USDT", "ETH_USDT"}
	cfg.Polling.IntervalMs = 3000
	cfg.Polling.FetchTimeoutMs = 5000
	cfg.Strategy.TakeProfit = 0.01
	cfg.Strategy.StopLoss = 0.005
	cfg.Strategy.LearningFactor = 0.0005
	cfg.Strategy.HistoryCap = domain.DefaultHistoryCap
	cfg.Strategy.ShortWindow = domain.DefaultShortWindow
	cfg.Strategy.LongWindow = domain.DefaultLongWindow
	cfg.Strategy.InitialBuyFactor = domain.DefaultBuyFactor
	cfg.Strategy.InitialSellFactor = domain.DefaultSellFactor
	cfg.Exchange.RESTEndpoint = "https://api.gateio.ws"
	cfg.Journal.LogFile = "log.txt"
	cfg.Journal.DBPath = "bot.db"
	cfg.Logging.Level = "info"
	cfg.Server.Port = 8080
	return &cfg
}

// Load reads path on top of the defaults; keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Instruments) == 0 {
		return errors.New("config: instruments must not be empty")
	}
	seen := make(map[string]bool, len(c.Instruments))
	for _, s := range c.Instruments {
		if s == "" {
			return errors.New("config: empty instrument symbol")
		}
		if seen[s] {
			return fmt.Errorf("config: duplicate instrument %s", s)
		}
		seen[s] = true
	}
	if c.Polling.IntervalMs <= 0 {
		return errors.New("config: polling.interval_ms must be positive")
	}
	if c.Polling.FetchTimeoutMs <= 0 {
		return errors.New("config: polling.fetch_timeout_ms must be positive")
	}
	s := c.Strategy
	if s.TakeProfit <= 0 || s.StopLoss <= 0 || s.LearningFactor < 0 {
		return errors.New("config: take_profit and stop_loss must be positive, learning_factor non-negative")
	}
	if s.ShortWindow <= 0 || s.LongWindow < s.ShortWindow || s.HistoryCap < s.LongWindow {
		return fmt.Errorf("config: need 0 < short_window (%d) <= long_window (%d) <= history_cap (%d)",
			s.ShortWindow, s.LongWindow, s.HistoryCap)
	}
	if s.InitialBuyFactor <= 0 || s.InitialSellFactor <= 0 {
		return errors.New("config: initial thresholds must be positive")
	}
	return nil
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.Polling.IntervalMs) * time.Millisecond
}

func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Polling.FetchTimeoutMs) * time.Millisecond
}

func (c *Config) Thresholds() domain.Thresholds {
	return domain.Thresholds{
		BuyFactor:  c.Strategy.InitialBuyFactor,
		SellFactor: c.Strategy.InitialSellFactor,
	}
}
