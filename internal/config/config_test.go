package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usersearch/internal/eventbus"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 300*time.Millisecond, cfg.DebounceDelay())
	assert.Equal(t, 25, cfg.MaxQueryLength)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Empty(t, cfg.QueryParam)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "nope", "config.toml"))
	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usersearch", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.Endpoint = "http://localhost:8080/users"
	cfg.QueryParam = "q"
	cfg.DebounceMs = 150
	cfg.UISettings.MaxSuggestions = 5
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "debounce_ms = 150")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("debounce_ms = 0\n[ui]\ntitle = \"Directory\"\n"), 0644))

	cfg, err := NewConfigService(path).LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.DebounceMs)
	assert.Equal(t, "Directory", cfg.UISettings.Title)
	assert.Equal(t, "Type to search...", cfg.UISettings.Placeholder)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint = \"not a url\"\ndebounce_ms = -5\n"), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint")
	assert.Contains(t, err.Error(), "debounce_ms")
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("debounce_ms = = 3"), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty endpoint", func(c *Config) { c.Endpoint = "" }, "endpoint must not be empty"},
		{"relative endpoint", func(c *Config) { c.Endpoint = "/users" }, "not an absolute URL"},
		{"query length zero", func(c *Config) { c.MaxQueryLength = 0 }, "max_query_length"},
		{"timeout zero", func(c *Config) { c.RequestTimeoutMs = 0 }, "request_timeout_ms"},
		{"negative suggestions", func(c *Config) { c.UISettings.MaxSuggestions = -1 }, "max_suggestions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestServicePublishesEvents(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	loaded := make(chan eventbus.DomainEvent, 1)
	saved := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { loaded <- e })
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) { saved <- e })

	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigServiceWithBus(path, bus)

	require.NoError(t, svc.Save(DefaultConfig()))
	_, err := svc.Load()
	require.NoError(t, err)

	for _, ch := range []chan eventbus.DomainEvent{saved, loaded} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("config event not published")
		}
	}
}
