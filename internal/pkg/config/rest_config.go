package config

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// RestConfig holds the settings of the REST service
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	RSA      RSASettings      `mapstructure:"rsa"`
}

// Validate checks that all fields in RestConfig are valid
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("keysize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return err
	}

	if c.Database.Type == SqliteDbType && c.Logger.writesInto(c.Database.DSN) {
		return fmt.Errorf("log file %s must not be the sqlite database", c.Logger.FilePath)
	}

	return nil
}

// InitializeRestConfig reads the YAML file at path into a validated RestConfig.
// Unset RSA and logger fields fall back to NewRSASettings and NewLoggerSettings.
func InitializeRestConfig(path string) (*RestConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return ParseRestConfig(content)
}

// ParseRestConfig decodes YAML content into a validated RestConfig.
func ParseRestConfig(content []byte) (*RestConfig, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := &RestConfig{
		Logger: *NewLoggerSettings(),
		RSA:    *NewRSASettings(),
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Logger.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
