package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("STORAGE_BACKEND", "Redis")
	t.Setenv("MAIL_SEND_DELAY", "250")
	t.Setenv("DEFAULT_RECIPIENTS", "a@example.org, b@example.org,")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, BackendRedis, cfg.StorageBackend)
	assert.Equal(t, 250*time.Millisecond, cfg.Mail.SendDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Mail.ConfirmDelay)
	assert.Equal(t, []string{"a@example.org", "b@example.org"}, cfg.Mail.DefaultRecipients)
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"STORAGE_BACKEND", "ADMIN_TOKEN", "REDIS_PREFIX", "RATE_LIMIT_BURST"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Empty(t, cfg.AdminToken)
	assert.Equal(t, "bwdtc:", cfg.Redis.Prefix)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.True(t, cfg.ArchiveSubmissions)
	assert.Nil(t, cfg.Mail.DefaultRecipients)
}

func TestDatabaseConfigEnabled(t *testing.T) {
	assert.False(t, DatabaseConfig{}.Enabled())
	assert.False(t, DatabaseConfig{Host: "h", User: "u"}.Enabled())
	assert.True(t, DatabaseConfig{Host: "h", User: "u", Name: "n"}.Enabled())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvFloat(t *testing.T) {
	key := "TEST_FLOAT_VAR"

	t.Setenv(key, "2.5")
	assert.Equal(t, 2.5, getEnvFloat(key, 1))

	t.Setenv(key, "nope")
	assert.Equal(t, 1.0, getEnvFloat(key, 1))
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_DURATION_VAR"

	tests := []struct {
		in   string
		want time.Duration
	}{
		{"1.5s", 1500 * time.Millisecond},
		{"750", 750 * time.Millisecond},
		{"soon", time.Minute},
		{"", time.Minute},
	}
	for _, tt := range tests {
		t.Setenv(key, tt.in)
		assert.Equal(t, tt.want, getEnvDuration(key, time.Minute), tt.in)
	}
}

func TestGetEnvList(t *testing.T) {
	key := "TEST_LIST_VAR"

	t.Setenv(key, " x , ,y")
	assert.Equal(t, []string{"x", "y"}, getEnvList(key, nil))

	t.Setenv(key, " , ")
	assert.Equal(t, []string{"d"}, getEnvList(key, []string{"d"}))
}
