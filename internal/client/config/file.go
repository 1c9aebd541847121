package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/recipediary/internal/flagx"
	"github.com/dmitrijs2005/recipediary/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk form of Config, shared by the JSON and YAML
// loaders. Zero values leave the corresponding Config field untouched.
type FileConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	UserID              string         `json:"user_id" yaml:"user_id"`
	DatabasePath        string         `json:"database_path" yaml:"database_path"`
	LogFile             string         `json:"log_file" yaml:"log_file"`
	LogLevel            string         `json:"log_level" yaml:"log_level"`
	CacheTimeout        timex.Duration `json:"cache_timeout" yaml:"cache_timeout"`
	NetworkTimeout      timex.Duration `json:"network_timeout" yaml:"network_timeout"`
	SyncConcurrency     int            `json:"sync_concurrency" yaml:"sync_concurrency"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
}

// parseFile overlays cfg with the file named by -c/-config. The format
// follows the extension: .yaml and .yml are YAML, anything else is JSON.
// Read and decode errors panic.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(fmt.Errorf("config %s: %w", path, err))
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.ServerEndpointAddr, fc.ServerEndpointAddr)
	setString(&cfg.UserID, fc.UserID)
	setString(&cfg.DatabasePath, fc.DatabasePath)
	setString(&cfg.LogFile, fc.LogFile)
	setString(&cfg.LogLevel, fc.LogLevel)
	if fc.CacheTimeout.Duration > 0 {
		cfg.CacheTimeout = fc.CacheTimeout.Duration
	}
	if fc.NetworkTimeout.Duration > 0 {
		cfg.NetworkTimeout = fc.NetworkTimeout.Duration
	}
	if fc.SyncConcurrency > 0 {
		cfg.SyncConcurrency = fc.SyncConcurrency
	}
	if fc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
