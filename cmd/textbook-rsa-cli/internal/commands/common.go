package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	if err := logger.InitLogger(config.NewLoggerSettings()); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// newProcessor builds an RSA processor for the given prime size and ciphertext encoding.
func newProcessor(keySize int, encoding string, random io.Reader, log logger.Logger) (cryptoalg.RSAProcessor, error) {
	settings := config.NewRSASettings()
	settings.KeySize = keySize
	settings.CiphertextEncoding = encoding

	processor, err := cryptography.NewRSAProcessor(settings, random, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}
	return processor, nil
}

// endOfInputKey names the control key that closes stdin on this platform.
func endOfInputKey() string {
	if runtime.GOOS == "windows" {
		return "Z"
	}
	return "D"
}
