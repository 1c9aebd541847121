package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, "default", c.UserID)
	assert.Equal(t, "recipes.db", c.DatabasePath)
	assert.Equal(t, 2*time.Second, c.CacheTimeout)
	assert.Equal(t, 6*time.Second, c.NetworkTimeout)
	assert.Equal(t, 4, c.SyncConcurrency)
	assert.Equal(t, 5*time.Second, c.OnlineCheckInterval)
}

func TestLoadConfig_Layers(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempFile(t, "cfg.yaml", "server_endpoint_addr: file:1\nuser_id: bob\nnetwork_timeout: 9s\n")
	os.Args = []string{"testbin", "-c", path, "-a", "flag:2"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "flag:2", cfg.ServerEndpointAddr, "flags override the file")
	assert.Equal(t, "bob", cfg.UserID)
	assert.Equal(t, 9*time.Second, cfg.NetworkTimeout)
	assert.Equal(t, 2*time.Second, cfg.CacheTimeout, "defaults survive")
}
