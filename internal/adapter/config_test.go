package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmcdole/todos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://mate.academy/students-api", cfg.Server.URL)
	assert.Equal(t, 965, cfg.Server.UserID)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 3*time.Second, cfg.UI.ErrorTimeout)
	assert.Equal(t, domain.FilterAll, cfg.Filter())
	assert.Equal(t, "INFO", cfg.Logging.Level)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  url: http://localhost:8080/api
  user_id: 12
  timeout: 5s
ui:
  error_timeout: 1500ms
  default_filter: active
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := LoadConfigFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.Server.URL)
	assert.Equal(t, 12, cfg.Server.UserID)
	assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.UI.ErrorTimeout)
	assert.Equal(t, domain.FilterActive, cfg.Filter())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("TODOS_SERVER_URL", "http://example.test")
	t.Setenv("TODOS_SERVER_USER_ID", "77")

	cfg, err := LoadConfigFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://example.test", cfg.Server.URL)
	assert.Equal(t, 77, cfg.Server.UserID)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("ui:\n  default_filter: someday\n"), 0644))

	_, err := LoadConfigFrom(dir)
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Server.URL = "http://127.0.0.1:9000"
	cfg.Server.UserID = 3
	cfg.UI.ErrorTimeout = 2 * time.Second
	cfg.UI.DefaultFilter = "completed"

	require.NoError(t, SaveConfigTo(cfg, dir))
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))

	loaded, err := LoadConfigFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg.Server.URL, loaded.Server.URL)
	assert.Equal(t, 3, loaded.Server.UserID)
	assert.Equal(t, 2*time.Second, loaded.UI.ErrorTimeout)
	assert.Equal(t, domain.FilterCompleted, loaded.Filter())
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Server.URL = "not a url"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Server.UserID = 0
	assert.Error(t, cfg.Validate())
}
