package server

import (
	"net/http"
	"testing"

	"agora/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeatureFlags(t *testing.T) {
	app := newTestAppWithConfig(t, func(cfg *config.Config) {
		cfg.FeatureFlags = "live_feed=on,post_cache=0%"
	})
	token := registerAndLogin(t, app, "flagwatcher")

	t.Run("requires auth", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/flags", nil, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("returns raw and evaluated flags", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/flags", nil, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Raw       map[string]string `json:"raw"`
			Evaluated map[string]bool   `json:"evaluated"`
		}
		decodeBody(t, resp, &out)

		assert.Equal(t, "on", out.Raw["live_feed"])
		assert.True(t, out.Evaluated["live_feed"])
		assert.False(t, out.Evaluated["post_cache"])
	})
}
