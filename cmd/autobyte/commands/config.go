package commands

import (
	"os"
	"time"

	"autobyte/lib/configutil"
	"autobyte/lib/scrapers/bestsellers"
	"autobyte/lib/util/restyutil"
	"autobyte/lib/util/serviceutil"
)

// every field is optional, the zero value falls back to the fixed
// defaults the generator ships with
type Config struct {
	OutputDir      string `json:"output_dir"`
	BaseUrl        string `json:"base_url"`
	UserAgent      string `json:"user_agent"`
	MaxItems       int    `json:"max_items"`
	AffiliateTag   string `json:"affiliate_tag"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

func loadConfig() (Config, error) {
	config, err := configutil.ReadConfig[Config]("config.json5")
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	return config, err
}

func (c Config) maxItems() int {
	if c.MaxItems <= 0 {
		return bestsellers.DefaultMaxItems
	}
	return c.MaxItems
}

func newScrapeClient(cfg Config) (*bestsellers.Client, error) {
	opts := bestsellers.ClientOptions{
		BaseUrl:   cfg.BaseUrl,
		UserAgent: cfg.UserAgent,
		Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
		Parser:    bestsellers.GoqueryParser{},
	}
	if *debugHttp != "" {
		opts.InstrumentOutput = restyutil.NewFilesystemOutput(*debugHttp)
	}
	return bestsellers.NewClient(opts)
}

func mustLoadConfig() Config {
	cfg, err := loadConfig()
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}
