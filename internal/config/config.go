package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	SourceFixtures = "fixtures"
	SourceYAML     = "yaml"
)

type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	Now       string          `yaml:"now" env:"VALIDATOR_NOW"`
	Log       LogConfig       `yaml:"log"`
	Validator ValidatorConfig `yaml:"validator"`
	Source    SourceConfig    `yaml:"source"`
	Report    ReportConfig    `yaml:"report"`
	Tracing   TracingConfig   `yaml:"tracing"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type ValidatorConfig struct {
	GroundTimeMode string `yaml:"ground_time_mode" env:"GROUND_TIME_MODE" env-default:"hour_of_day"`
}

type SourceConfig struct {
	Kind string `yaml:"kind" env:"SOURCE_KIND" env-default:"fixtures"`
	Path string `yaml:"path" env:"SOURCE_PATH"`
}

type ReportConfig struct {
	Color bool `yaml:"color" env:"REPORT_COLOR" env-default:"false"`
}

type TracingConfig struct {
	Enabled     bool   `yaml:"enabled" env:"TRACING_ENABLED" env-default:"false"`
	ServiceName string `yaml:"service_name" env:"TRACING_SERVICE_NAME" env-default:"flight-validator"`
}

type MetricsConfig struct {
	Textfile string `yaml:"textfile" env:"METRICS_TEXTFILE"`
}

// ReferenceTime returns the configured reference time, or fallback when unset.
func (c *Config) ReferenceTime(fallback time.Time) (time.Time, error) {
	if strings.TrimSpace(c.Now) == "" {
		return fallback, nil
	}

	now, err := time.Parse(time.RFC3339, strings.TrimSpace(c.Now))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse now %q: %w", c.Now, err)
	}
	return now, nil
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}
	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	cfg, err := LoadByPath(configPath)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

func LoadByPath(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exists: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read the config: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Source.Kind)) {
	case SourceFixtures:
	case SourceYAML:
		if strings.TrimSpace(cfg.Source.Path) == "" {
			return nil, fmt.Errorf("source.path is required for yaml source")
		}
	default:
		return nil, fmt.Errorf("unknown source kind: %q", cfg.Source.Kind)
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	if res == "" {
		res = "config/local.yaml"
	}

	return res
}
