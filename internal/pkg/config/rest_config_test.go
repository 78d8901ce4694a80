//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRestConfig = `
port: 8080
logger:
  log_level: debug
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
  name: keys
rsa:
  key_size: 512
  miller_rabin_rounds: 30
`

func TestParseRestConfig(t *testing.T) {
	cfg, err := ParseRestConfig([]byte(validRestConfig))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, ":memory:", cfg.Database.DSN)
	assert.Equal(t, 512, cfg.RSA.KeySize)
	assert.Equal(t, 30, cfg.RSA.MillerRabinRounds)
	// Not set in the file, so the default survives.
	assert.Equal(t, CiphertextEncodingBase64, cfg.RSA.CiphertextEncoding)
}

func TestParseRestConfig_RSADefaults(t *testing.T) {
	content := `
port: "9090"
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
`
	cfg, err := ParseRestConfig([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, DefaultKeySize, cfg.RSA.KeySize)
	assert.Equal(t, 0, cfg.RSA.MillerRabinRounds)
}

func TestParseRestConfig_LoggerDefaults(t *testing.T) {
	t.Run("logger section omitted", func(t *testing.T) {
		cfg, err := ParseRestConfig([]byte("port: 8080\ndatabase:\n  type: sqlite\n"))
		require.NoError(t, err)

		assert.Equal(t, LogLevelInfo, cfg.Logger.LogLevel)
		assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	})

	t.Run("file logger with only a type", func(t *testing.T) {
		cfg, err := ParseRestConfig([]byte("port: 8080\nlogger:\n  log_type: file\ndatabase:\n  type: sqlite\n"))
		require.NoError(t, err)

		assert.Equal(t, DefaultLogFilePath, cfg.Logger.FilePath)
		assert.Equal(t, DefaultLogMaxSize, cfg.Logger.MaxSize)
		assert.Equal(t, DefaultLogMaxBackups, cfg.Logger.MaxBackups)
		assert.Equal(t, DefaultLogMaxAge, cfg.Logger.MaxAge)
	})

	t.Run("zero rotation limits fall back", func(t *testing.T) {
		content := "port: 8080\nlogger:\n  log_type: file\n  file_path: /tmp/rsa.log\n  max_size: 0\ndatabase:\n  type: sqlite\n"
		cfg, err := ParseRestConfig([]byte(content))
		require.NoError(t, err)

		assert.Equal(t, "/tmp/rsa.log", cfg.Logger.FilePath)
		assert.Equal(t, DefaultLogMaxSize, cfg.Logger.MaxSize)
	})
}

func TestParseRestConfig_LogFileIsDatabase(t *testing.T) {
	content := `
port: 8080
logger:
  log_type: file
  file_path: keys.db
database:
  type: sqlite
  dsn: "file:keys.db?cache=shared"
`
	_, err := ParseRestConfig([]byte(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be the sqlite database")

	// A postgres DSN never names a log file.
	content = `
port: 8080
logger:
  log_type: file
  file_path: keys.db
database:
  type: postgres
  dsn: keys.db
`
	_, err = ParseRestConfig([]byte(content))
	assert.NoError(t, err)
}

func TestParseRestConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "port: [8080"},
		{"unknown key", validRestConfig + "unknown: true\n"},
		{"missing port", "logger:\n  log_level: info\n  log_type: console\ndatabase:\n  type: sqlite\n"},
		{"invalid key size", "port: 8080\nlogger:\n  log_level: info\n  log_type: console\ndatabase:\n  type: sqlite\nrsa:\n  key_size: 100\n"},
		{"invalid logger", "port: 8080\nlogger:\n  log_level: loud\n  log_type: console\ndatabase:\n  type: sqlite\n"},
		{"rotation out of range", "port: 8080\nlogger:\n  log_type: file\n  max_backups: 11\ndatabase:\n  type: sqlite\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRestConfig([]byte(tt.content))
			assert.Error(t, err)
		})
	}
}

func TestInitializeRestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validRestConfig), 0600))

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)

	_, err = InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
