package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App:     ClientApp{ContainerID: "com.example.contacts"},
		Adapter: ClientAdapter{BaseURL: "https://records.example.com", RequestTimeout: 15 * time.Second},
		Storage: ClientStorage{DB: ClientDB{DSN: "contacts.db"}},
		Workers: ClientWorkers{RefreshInterval: 5 * time.Minute},
	}
}

func TestClientConfig_Validate_OK(t *testing.T) {
	require.NoError(t, validClientConfig().validate())
}

func TestClientConfig_Validate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{"empty dsn", func(c *ClientConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"in-memory dsn", func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, ErrInvalidStorageConfigs},
		{"empty base url", func(c *ClientConfig) { c.Adapter.BaseURL = "" }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"zero refresh interval", func(c *ClientConfig) { c.Workers.RefreshInterval = 0 }, ErrInvalidWorkerConfigs},
		{"empty container id", func(c *ClientConfig) { c.App.ContainerID = "" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestClientConfig_ApplyDefaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "contact-share.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "com.example.contacts", cfg.App.ContainerID)
	require.NoError(t, cfg.validate())
}
