package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// File logger defaults. Sizes are in megabytes, ages in days.
const (
	DefaultLogFilePath   = "logs/textbook-rsa.log"
	DefaultLogMaxSize    = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAge     = 28
)

// LoggerSettings selects the console or the rotated file logger.
// Rotation limits left at zero fall back to the defaults above.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size" validate:"gte=0,lte=100"`
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0,lte=10"`
	MaxAge     int    `mapstructure:"max_age" validate:"gte=0,lte=365"`
}

// NewLoggerSettings returns an info level console logger whose file
// settings are ready should log_type be switched to file.
func NewLoggerSettings() *LoggerSettings {
	return &LoggerSettings{
		LogLevel:   LogLevelInfo,
		LogType:    LogTypeConsole,
		FilePath:   DefaultLogFilePath,
		MaxSize:    DefaultLogMaxSize,
		MaxBackups: DefaultLogMaxBackups,
		MaxAge:     DefaultLogMaxAge,
	}
}

// ApplyDefaults fills unset fields. A file logger without a path writes to
// DefaultLogFilePath.
func (s *LoggerSettings) ApplyDefaults() {
	if s.LogLevel == "" {
		s.LogLevel = LogLevelInfo
	}
	if s.LogType == "" {
		s.LogType = LogTypeConsole
	}
	if s.LogType != LogTypeFile {
		return
	}
	if s.FilePath == "" {
		s.FilePath = DefaultLogFilePath
	}
	if s.MaxSize == 0 {
		s.MaxSize = DefaultLogMaxSize
	}
	if s.MaxBackups == 0 {
		s.MaxBackups = DefaultLogMaxBackups
	}
	if s.MaxAge == 0 {
		s.MaxAge = DefaultLogMaxAge
	}
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
	}
	return fmt.Errorf("validation failed for LoggerSettings: %s", strings.Join(messages, "; "))
}

// writesInto reports whether the file logger would write into the sqlite
// database behind dsn.
func (s *LoggerSettings) writesInto(dsn string) bool {
	if s.LogType != LogTypeFile || dsn == "" {
		return false
	}
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return path == s.FilePath
}
