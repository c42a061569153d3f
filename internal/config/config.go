// Package config loads settings from meetfind.yaml and the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	AppPort  string `mapstructure:"APP_PORT"`
	Timezone string `mapstructure:"TIMEZONE"`

	AllowOrigins []string `mapstructure:"ALLOW_ORIGINS"`

	DefaultDuration   int `mapstructure:"DEFAULT_DURATION"`
	SlotStep          int `mapstructure:"SLOT_STEP"`
	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`
	ParallelThreshold int `mapstructure:"PARALLEL_THRESHOLD"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("ALLOW_ORIGINS", []string{"*"})
	v.SetDefault("DEFAULT_DURATION", 30)
	v.SetDefault("SLOT_STEP", 15)
	v.SetDefault("MAX_REQUESTS_PER_MIN", 120)
	v.SetDefault("PARALLEL_THRESHOLD", 4096)
}

// LoadConfig reads meetfind.yaml from the passed directories (defaults to . and ./config),
// environment variables take precedence. A missing file is not an error.
func LoadConfig(configPaths ...string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("meetfind")
	v.SetConfigType("yaml")

	if len(configPaths) == 0 {
		configPaths = []string{".", "./config"}
	}

	for _, path := range configPaths {
		v.AddConfigPath(path)
	}

	v.AutomaticEnv()
	setDefaults(v)

	if errRead := v.ReadInConfig(); errRead != nil {
		var errNotFound viper.ConfigFileNotFoundError

		if !errors.As(errRead, &errNotFound) {
			return nil,
				fmt.Errorf("failed to read config: %w", errRead)
		}
	}

	var result Config

	if errUnmarshal := v.Unmarshal(&result); errUnmarshal != nil {
		return nil,
			fmt.Errorf("failed to decode config: %w", errUnmarshal)
	}

	if errValidation := result.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &result,
		nil
}

func (c *Config) IsValid() error {
	if len(c.AppPort) == 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - Config",
			Issue: goerrors.ErrNilInput{
				InputName: "APP_PORT",
			},
		}
	}

	if c.DefaultDuration <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - Config",
			Issue: goerrors.ErrNegativeInput{
				InputName: "DEFAULT_DURATION",
			},
		}
	}

	if c.SlotStep <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - Config",
			Issue: goerrors.ErrNegativeInput{
				InputName: "SLOT_STEP",
			},
		}
	}

	if c.MaxRequestsPerMin <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - Config",
			Issue: goerrors.ErrNegativeInput{
				InputName: "MAX_REQUESTS_PER_MIN",
			},
		}
	}

	if _, errLocation := time.LoadLocation(c.Timezone); errLocation != nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - Config",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "TIMEZONE",
				InputValue: c.Timezone,
				Issue:      errLocation,
			},
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Location is only used to decide where a calendar day starts.
func (c *Config) Location() *time.Location {
	location, errLocation := time.LoadLocation(c.Timezone)
	if errLocation != nil {
		return time.UTC
	}

	return location
}
