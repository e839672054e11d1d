package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigFrom_Defaults(t *testing.T) {
	cfg, err := LoadConfigFrom(writeConfig(t, "server:\n  addr: \":9090\"\n"))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, InflightMemory, cfg.Submit.InflightDriver)
	assert.Equal(t, 2*time.Second, cfg.Submit.Delay)
	assert.Equal(t, 0.002, cfg.Submit.FeeRate)
	assert.Equal(t, "conv_session", cfg.Web.SessionCookie)
	assert.Equal(t, "BTC", cfg.Web.DefaultFrom)
	assert.False(t, cfg.Scheduler.Enabled)
	assert.False(t, cfg.Telegram.Enabled)
}

func TestLoadConfigFrom_File(t *testing.T) {
	path := writeConfig(t, `
storage:
  driver: postgres
postgres:
  host: db
  dbname: conv
redis:
  addr: redis:6379
submit:
  delay: 500ms
  inflight_driver: redis
snapshot:
  path: /etc/conversions/snapshot.yaml
scheduler:
  enabled: true
  interval: 1m
`)
	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "db", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 500*time.Millisecond, cfg.Submit.Delay)
	assert.Equal(t, InflightRedis, cfg.Submit.InflightDriver)
	assert.Equal(t, "/etc/conversions/snapshot.yaml", cfg.Snapshot.Path)
	assert.Equal(t, time.Minute, cfg.Scheduler.Interval)
}

func TestLoadConfigFrom_Invalid(t *testing.T) {
	tests := map[string]string{
		"storage driver":  "storage:\n  driver: mongo\n",
		"inflight driver": "submit:\n  inflight_driver: etcd\n",
		"fee rate":        "submit:\n  fee_rate: -1\n",
		"telegram token":  "telegram:\n  enabled: true\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("TELEGRAM_BOT_TOKEN", "")
			_, err := LoadConfigFrom(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigFrom_MissingFile(t *testing.T) {
	_, err := LoadConfigFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigFrom_EnvOnly(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("STORAGE_DRIVER", "postgres")

	cfg, err := LoadConfigFrom("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
}
