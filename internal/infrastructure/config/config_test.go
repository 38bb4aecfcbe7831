package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "BookStore", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ".", cfg.Storage.DataDir)
	assert.Equal(t, "users.json", cfg.Storage.UsersFile)
	assert.Equal(t, "books.json", cfg.Storage.BooksFile)
	assert.Equal(t, "orders.json", cfg.Storage.OrdersFile)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, 12, cfg.Catalog.PageSize)
	assert.Equal(t, 20, cfg.Catalog.LowStockThreshold)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_DATA_DIR", "/var/lib/bookstore")
	t.Setenv("CATALOG_PAGE_SIZE", "24")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/var/lib/bookstore", cfg.Storage.DataDir)
	assert.Equal(t, 24, cfg.Catalog.PageSize)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "-1")

	_, err := Load()
	assert.Error(t, err)
}

func TestStoragePaths(t *testing.T) {
	storage := StorageConfig{
		DataDir:    "/data",
		UsersFile:  "users.json",
		BooksFile:  "books.json",
		OrdersFile: "orders.json",
	}

	assert.Equal(t, filepath.Join("/data", "users.json"), storage.UsersPath())
	assert.Equal(t, filepath.Join("/data", "books.json"), storage.BooksPath())
	assert.Equal(t, filepath.Join("/data", "orders.json"), storage.OrdersPath())
}

func TestEnvironmentHelpers(t *testing.T) {
	app := AppConfig{Environment: "development"}
	assert.True(t, app.IsDevelopment())
	assert.False(t, app.IsProduction())

	app.Environment = "production"
	assert.True(t, app.IsProduction())
}
