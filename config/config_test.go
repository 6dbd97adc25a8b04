package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	cfg, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.HTTPPort)
	assert.Equal(t, 60*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "data/itinerary.json", cfg.Itinerary.Path)
	assert.Equal(t, "gemini-2.0-flash", cfg.GenAI.Model)
	assert.Equal(t, "GOOGLE_GEMINI_API_KEY", cfg.GenAI.APIKeyEnv)
	assert.Equal(t, 30*time.Minute, cfg.Tips.TaskTTL)
	assert.Contains(t, cfg.Map.NavigationURL, "destination=%s,%s")
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoadEmbedded_EnvOverride(t *testing.T) {
	t.Setenv("ITINERARY_PATH", "/srv/trip.yaml")
	t.Setenv("SERVER_HTTPPORT", "9999")

	cfg, err := LoadEmbedded()
	require.NoError(t, err)
	assert.Equal(t, "/srv/trip.yaml", cfg.Itinerary.Path)
	assert.Equal(t, "9999", cfg.Server.HTTPPort)
}

func TestConfig_APIKey(t *testing.T) {
	cfg, err := LoadEmbedded()
	require.NoError(t, err)

	t.Run("unset", func(t *testing.T) {
		t.Setenv("GOOGLE_GEMINI_API_KEY", "")
		assert.Empty(t, cfg.APIKey())
	})

	t.Run("set", func(t *testing.T) {
		t.Setenv("GOOGLE_GEMINI_API_KEY", "secret")
		assert.Equal(t, "secret", cfg.APIKey())
	})

	t.Run("no env name configured", func(t *testing.T) {
		c := cfg
		c.GenAI.APIKeyEnv = ""
		t.Setenv("GOOGLE_GEMINI_API_KEY", "secret")
		assert.Empty(t, c.APIKey())
	})
}
