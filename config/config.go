// Package config reads the configuration of the xmladiscover command.
package config

import (
	"os"

	"github.com/kent-id/xmladiscover"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the command configuration
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Model    string       `yaml:"model"`
	Server   ServerConfig `yaml:"server"`
	Source   SourceConfig `yaml:"source"`
}

// ServerConfig overrides the DISCOVER_DATASOURCES description
type ServerConfig struct {
	DataSourceName        string   `yaml:"data_source_name"`
	DataSourceDescription string   `yaml:"data_source_description"`
	URL                   string   `yaml:"url"`
	DataSourceInfo        string   `yaml:"data_source_info"`
	ProviderName          string   `yaml:"provider_name"`
	ProviderTypes         []string `yaml:"provider_types"`
	AuthenticationMode    string   `yaml:"authentication_mode"`
}

// SourceConfig selects the relational store listed by DBSCHEMA_SOURCE_TABLES
type SourceConfig struct {
	// Driver is "", "postgres" or "athena".
	Driver  string `yaml:"driver"`
	DSN     string `yaml:"dsn"`
	Region  string `yaml:"region"`
	Catalog string `yaml:"catalog"`
}

const (
	DriverNone     = ""
	DriverPostgres = "postgres"
	DriverAthena   = "athena"
)

// Default returns default configuration
func Default() *Config {
	info := xmladiscover.DefaultServerInfo()
	return &Config{
		LogLevel: "warn",
		Server: ServerConfig{
			DataSourceName:        info.DataSourceName,
			DataSourceDescription: info.DataSourceDescription,
			URL:                   info.URL,
			DataSourceInfo:        info.DataSourceInfo,
			ProviderName:          info.ProviderName,
			ProviderTypes:         info.ProviderTypes,
			AuthenticationMode:    info.AuthenticationMode,
		},
		Source: SourceConfig{
			Region:  "us-east-1",
			Catalog: "AwsDataCatalog",
		},
	}
}

// Load reads path over the defaults and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if _, err := xmladiscover.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Source.Driver {
	case DriverNone, DriverAthena:
	case DriverPostgres:
		if c.Source.DSN == "" {
			return errors.New("source.dsn is required for the postgres driver")
		}
	default:
		return errors.Errorf("unknown source driver %q", c.Source.Driver)
	}
	return nil
}

// ServerInfo builds the DISCOVER_DATASOURCES description
func (c *Config) ServerInfo() xmladiscover.ServerInfo {
	info := xmladiscover.DefaultServerInfo()
	s := c.Server
	if s.DataSourceName != "" {
		info.DataSourceName = s.DataSourceName
	}
	if s.DataSourceDescription != "" {
		info.DataSourceDescription = s.DataSourceDescription
	}
	if s.URL != "" {
		info.URL = s.URL
	}
	if s.DataSourceInfo != "" {
		info.DataSourceInfo = s.DataSourceInfo
	}
	if s.ProviderName != "" {
		info.ProviderName = s.ProviderName
	}
	if len(s.ProviderTypes) > 0 {
		info.ProviderTypes = s.ProviderTypes
	}
	if s.AuthenticationMode != "" {
		info.AuthenticationMode = s.AuthenticationMode
	}
	return info
}
