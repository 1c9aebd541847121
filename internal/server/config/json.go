package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/recipediary/internal/flagx"
	"github.com/dmitrijs2005/recipediary/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept both strings
// such as "15m" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	DatabaseDSN      string         `json:"database_dsn"`
	S3RootUser       string         `json:"s3_root_user"`
	S3RootPassword   string         `json:"s3_root_password"`
	S3Bucket         string         `json:"s3_bucket"`
	S3Region         string         `json:"s3_region"`
	S3BaseEndpoint   string         `json:"s3_base_endpoint"`
	ImageURLExpiry   timex.Duration `json:"image_url_expiry"`
}

// parseJson loads the file named by -c/-config, if any, and copies every
// non-empty value into config. An unreadable or invalid file panics.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	for _, f := range []struct {
		dst *string
		v   string
	}{
		{&config.EndpointAddrGRPC, c.EndpointAddrGRPC},
		{&config.DatabaseDSN, c.DatabaseDSN},
		{&config.S3RootUser, c.S3RootUser},
		{&config.S3RootPassword, c.S3RootPassword},
		{&config.S3Bucket, c.S3Bucket},
		{&config.S3Region, c.S3Region},
		{&config.S3BaseEndpoint, c.S3BaseEndpoint},
	} {
		if f.v != "" {
			*f.dst = f.v
		}
	}
	if c.ImageURLExpiry.Duration > 0 {
		config.ImageURLExpiry = time.Duration(c.ImageURLExpiry.Duration)
	}
}
