package config

import (
	"os"

	authConfig "github.com/ignisVeneficus/wifiportal/config/auth"
	dbConfig "github.com/ignisVeneficus/wifiportal/config/database"
	portalConfig "github.com/ignisVeneficus/wifiportal/config/portal"
	serverConfig "github.com/ignisVeneficus/wifiportal/config/server"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	ENV_PREFIX = "WIFIPORTAL"
)

var (
	LogConfigEnv = ENV_PREFIX + "_LOG_CONFIG"
	ConfigEnv    = ENV_PREFIX + "_CONFIG"
)

type Config struct {
	Env      Environment               `yaml:"-"` // only from the environment
	Server   serverConfig.ServerConfig `yaml:"server"`
	Database dbConfig.DatabaseConfig   `yaml:"database"`
	Auth     authConfig.AuthConfig     `yaml:"auth"`
	Portal   portalConfig.PortalConfig `yaml:"portal"`
}

func Load(path string) (*Config, error) {
	log.Logger.Debug().Msg("Configuration loading start")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	log.Logger.Info().Msg("Configuration loaded")
	return cfg, nil
}

// Parse decodes, validates and normalises a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Env = LoadEnvironment()
	if err := cfg.TransformBeforeValidation(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.TransformAfterValidation(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func GetLogConfigPath() string {
	logConfig := os.Getenv(LogConfigEnv)
	if logConfig == "" {
		log.Fatal().
			Msg(LogConfigEnv + " must be set (logging config required)")
	}
	return logConfig
}

func GetConfigPath() string {
	cfgPath := os.Getenv(ConfigEnv)
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	return cfgPath
}
