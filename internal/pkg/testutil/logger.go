package testutil

import (
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger returns the shared console logger at debug level.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := config.NewLoggerSettings()
	settings.LogLevel = config.LogLevelDebug

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}
