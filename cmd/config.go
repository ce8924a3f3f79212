package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// TeradataConfig mirrors the teradata section of the config file.
type TeradataConfig struct {
	Database  string `mapstructure:"database"`
	Host      string `mapstructure:"host"`
	User      string `mapstructure:"user"`
	Password  string `mapstructure:"password"`
	LogonMech string `mapstructure:"logonmech"`
	Driver    string `mapstructure:"driver"`
	DSN       string `mapstructure:"dsn"`
}

// GetTeradataConfig returns the connection configuration for the target system.
func GetTeradataConfig() (*TeradataConfig, error) {
	var config TeradataConfig

	if err := viper.UnmarshalKey("teradata", &config); err != nil {
		return nil, fmt.Errorf("failed to parse teradata config: %w", err)
	}

	if config.Driver == "" {
		config.Driver = viper.GetString("teradata.driver")
	}
	if config.Database == "" {
		return nil, fmt.Errorf("teradata.database is required (via config file)")
	}
	if config.Host == "" && config.DSN == "" {
		return nil, fmt.Errorf("teradata.host or teradata.dsn is required (via flag or config)")
	}

	return &config, nil
}

// ValidateRenderValues checks the values that get interpolated into the
// script text. An explicit DSN covers the catalog connection only; the
// rendered EXPORT operator still needs the host credentials.
func (c *TeradataConfig) ValidateRenderValues() error {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "teradata.host")
	}
	if c.User == "" {
		missing = append(missing, "teradata.user")
	}
	if c.Password == "" {
		missing = append(missing, "teradata.password")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s required to render scripts (a DSN only covers the catalog connection)", strings.Join(missing, ", "))
	}
	return nil
}

// ConnectionString builds the ODBC connect string from the host credentials,
// unless an explicit DSN was supplied.
func (c *TeradataConfig) ConnectionString() string {
	if c.DSN != "" {
		return c.DSN
	}

	parts := []string{
		"DRIVER={Teradata Database ODBC Driver}",
		"DBCName=" + c.Host,
		"UID=" + c.User,
		"PWD=" + c.Password,
	}
	if c.LogonMech != "" {
		parts = append(parts, "MechanismName="+c.LogonMech)
	}
	return strings.Join(parts, ";")
}
