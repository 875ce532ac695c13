package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agora/internal/config"
	"agora/internal/database"
	"agora/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp builds a server on a fresh in-memory database and returns the
// Fiber app with the full route table mounted.
func newTestApp(t *testing.T) *fiber.App {
	return newTestAppWithConfig(t, nil)
}

// newTestAppWithConfig is newTestApp with a hook to adjust the config
// before the server is built.
func newTestAppWithConfig(t *testing.T, adjust func(*config.Config)) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret: "test-secret-for-handlers",
		Port:      "0",
		Env:       "test",
	}
	if adjust != nil {
		adjust(cfg)
	}
	srv, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	srv.SetupRoutes(app)
	return app
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody unmarshals a response body into dest.
func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// registerAndLogin creates a user and returns a bearer token for it.
func registerAndLogin(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/v1/users",
		map[string]string{"username": username}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login",
		map[string]string{"username": username}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	decodeBody(t, resp, &out)
	require.NotEmpty(t, out.Data.Token)
	return out.Data.Token
}

// createPost creates a post for the given token and returns its ID.
func createPost(t *testing.T, app *fiber.App, token, topic, community string) uint {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/v1/posts", map[string]string{
		"topic":     topic,
		"content":   "content for " + topic,
		"community": community,
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	decodeBody(t, resp, &out)
	require.NotZero(t, out.Data.ID)
	return out.Data.ID
}
