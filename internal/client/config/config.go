package config

import "time"

// Config holds runtime settings for the recipe diary client.
type Config struct {
	ServerEndpointAddr  string
	UserID              string
	DatabasePath        string
	LogFile             string
	LogLevel            string
	CacheTimeout        time.Duration
	NetworkTimeout      time.Duration
	SyncConcurrency     int
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.UserID = "default"
	c.DatabasePath = "recipes.db"
	c.LogFile = "recipediary.log"
	c.LogLevel = "info"
	c.CacheTimeout = 2 * time.Second
	c.NetworkTimeout = 6 * time.Second
	c.SyncConcurrency = 4
	c.OnlineCheckInterval = 5 * time.Second
}

// LoadConfig builds a Config from defaults, then the config file (if one is
// given with -c/-config), then command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
