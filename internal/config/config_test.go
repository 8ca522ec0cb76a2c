package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillDefaults(t *testing.T) {
	var c Config
	c.FillDefaults()

	assert.Equal(t, "info", c.App.LogLevel)
	assert.Equal(t, "http://localhost:8000", c.API.BaseURL)
	assert.Equal(t, 10, c.Paging.PageSize)
	assert.Equal(t, "default", c.Session.ID)
	assert.Empty(t, c.Redis.Addr, "redis stays opt-in")

	d, err := c.ParseDurations()
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, d.Debounce)
	assert.Equal(t, 10*time.Second, d.APITimeout)
	assert.Equal(t, 24*time.Hour, d.SessionTTL)
	assert.Equal(t, 5*time.Minute, d.Watch)
}

func TestFillDefaultsKeepsValues(t *testing.T) {
	c := Config{
		API:    APIConfig{BaseURL: "https://api.example.com"},
		Paging: PagingConfig{PageSize: 25},
		Search: SearchConfig{Debounce: "150ms"},
	}
	c.FillDefaults()
	assert.Equal(t, "https://api.example.com", c.API.BaseURL)
	assert.Equal(t, 25, c.Paging.PageSize)

	d, err := c.ParseDurations()
	require.NoError(t, err)
	assert.Equal(t, 150*time.Millisecond, d.Debounce)
}

func TestParseDurationsRejectsBadValues(t *testing.T) {
	for _, v := range []string{"soon", "-1s", "0s"} {
		c := Config{}
		c.FillDefaults()
		c.Search.Debounce = v
		_, err := c.ParseDurations()
		assert.Error(t, err, v)
		assert.Contains(t, err.Error(), "search.debounce")
	}
}
