package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimal = `
[database]
dbname = "scheduler"

[lesson_service]
url = "http://lessons:8080"
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "Asia/Seoul", cfg.Scheduling.Timezone)
	assert.Equal(t, 10, cfg.Scheduling.GridMinutes)
	assert.Equal(t, 0, cfg.Scheduling.AdvanceBookingDays)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Redis.Enabled)

	loc, err := cfg.Scheduling.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Seoul", loc.String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("LESSON_SERVICE_URL", "http://override:9000")
	t.Setenv("REDIS_ADDR", "redis:6380")

	cfg, err := Load(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "http://override:9000", cfg.LessonService.URL)
	assert.Equal(t, "redis:6380", cfg.Redis.Addr)
	assert.Contains(t, cfg.Database.DSN(), "password=secret")
	assert.Contains(t, cfg.Database.DSN(), "dbname=scheduler")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"grid does not divide day", minimal + "\n[scheduling]\ngrid_minutes = 7\n"},
		{"grid too coarse", minimal + "\n[scheduling]\ngrid_minutes = 120\n"},
		{"horizon too far", minimal + "\n[scheduling]\nadvance_booking_days = 400\n"},
		{"unknown timezone", minimal + "\n[scheduling]\ntimezone = \"Mars/Olympus\"\n"},
		{"missing lesson service", "[database]\ndbname = \"scheduler\"\n"},
		{"bad trusted proxy", minimal + "\n[rate_limit]\ntrusted_proxies = [\"proxy.local\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
