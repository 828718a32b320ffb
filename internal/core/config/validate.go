package config

import (
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"
)

// Validate performs structural validation of the configuration.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("log_level", c.LogLevel, validLogLevel),
	)
}

func validLogLevel(level string) error {
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("unknown log level %q", level)
	}
	return nil
}
