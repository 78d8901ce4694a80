//go:build unit
// +build unit

package logger

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func TestInitLogger_NilSettings(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(nil))

	log, err := GetLogger()
	require.NoError(t, err)
	assert.IsType(t, &SlogLogger{}, log)
}

func TestInitLogger_FileLoggerWithDefaults(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	logPath := filepath.Join(t.TempDir(), "logs", "rsa.log")
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeFile,
		FilePath: logPath,
	}

	require.NoError(t, InitLogger(settings))
	assert.Zero(t, settings.MaxSize, "caller settings must not be modified")

	log, err := GetLogger()
	require.NoError(t, err)
	log.Debug("candidate rejected")
	log.Info("generated %d-bit key pair", 16)

	file, err := os.Open(logPath)
	require.NoError(t, err)
	defer file.Close()

	scanner := bufio.NewScanner(file)
	require.True(t, scanner.Scan(), "expected one record in %s", logPath)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "generated 16-bit key pair", record["msg"])
	assert.False(t, scanner.Scan(), "debug records are below the info level")
}

func TestInitLogger_InvalidSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings *config.LoggerSettings
	}{
		{"unknown level", &config.LoggerSettings{LogLevel: "verbose"}},
		{"unknown type", &config.LoggerSettings{LogType: "syslog"}},
		{"rotation size out of range", &config.LoggerSettings{LogType: config.LogTypeFile, MaxSize: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(resetLoggerSingleton)

			err := InitLogger(tt.settings)
			assert.ErrorContains(t, err, "invalid config")

			log, getErr := GetLogger()
			assert.Error(t, getErr)
			assert.Nil(t, log)
		})
	}
}

func TestInitLogger_FirstCallWins(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(config.NewLoggerSettings()))
	first, err := GetLogger()
	require.NoError(t, err)

	// Later settings are never looked at, even invalid ones.
	assert.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: "verbose"}))

	second, err := GetLogger()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestGetLogger_BeforeInit(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	log, err := GetLogger()
	assert.ErrorContains(t, err, "not initialized")
	assert.Nil(t, log)
}

func TestParseLevel(t *testing.T) {
	levels := map[string]slog.Level{
		config.LogLevelDebug:    slog.LevelDebug,
		config.LogLevelInfo:     slog.LevelInfo,
		config.LogLevelWarning:  slog.LevelWarn,
		config.LogLevelError:    slog.LevelError,
		config.LogLevelCritical: slog.LevelError,
		"":                      slog.LevelInfo,
	}

	for level, expected := range levels {
		assert.Equal(t, expected, parseLevel(level), "level %q", level)
	}
}

func TestFormatArgs(t *testing.T) {
	tests := []struct {
		args     []interface{}
		expected string
	}{
		{nil, ""},
		{[]interface{}{"key pair stored"}, "key pair stored"},
		{[]interface{}{"Starting server on port ", "8080"}, "Starting server on port 8080"},
		{[]interface{}{"generated %d-bit modulus in %s", 2048, "1.2s"}, "generated 2048-bit modulus in 1.2s"},
		{[]interface{}{"100% of candidates tested"}, "100% of candidates tested"},
		{[]interface{}{42, "%d"}, "42%d"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatArgs(tt.args...))
	}
}
