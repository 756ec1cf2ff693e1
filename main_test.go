package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"recados/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testConfig(driver string) config.Config {
	return config.Config{
		AppPort:       ":0",
		StorageDriver: driver,
		DatabaseDSN:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		BcryptCost:    4,
		LogLevel:      "debug",
	}
}

func TestNewApp_HealthCheck(t *testing.T) {
	for _, driver := range []string{config.StorageMemory, config.StorageSQLite} {
		t.Run(driver, func(t *testing.T) {
			app, cleanup, err := newApp(testConfig(driver), zaptest.NewLogger(t), nil)
			require.NoError(t, err)
			t.Cleanup(func() { assert.NoError(t, cleanup()) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "healthy", body["status"])
			assert.Equal(t, driver, body["storage"])
			assert.Equal(t, false, body["events"])
		})
	}
}

func TestNewApp_RoutesWired(t *testing.T) {
	for _, driver := range []string{config.StorageMemory, config.StorageSQLite} {
		t.Run(driver, func(t *testing.T) {
			app, cleanup, err := newApp(testConfig(driver), zaptest.NewLogger(t), nil)
			require.NoError(t, err)
			t.Cleanup(func() { assert.NoError(t, cleanup()) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users", nil), -1)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)

			body, _ := json.Marshal(map[string]string{"name": "Ana", "email": "a@x.com", "password": "secret"})
			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			resp, err = app.Test(req, -1)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusCreated, resp.StatusCode)

			resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/users", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestNewApp_UnknownRoute(t *testing.T) {
	app, cleanup, err := newApp(testConfig(config.StorageMemory), zaptest.NewLogger(t), nil)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, cleanup()) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Rota não encontrada.", body["message"])
}
