// Package config merges CLI configuration from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config carries everything the CLI needs to run.
type Config struct {
	Token      string `mapstructure:"token"`
	BudgetName string `mapstructure:"budget-name"`
	Output     string `mapstructure:"output"`
	Verbose    bool   `mapstructure:"verbose"`
}

// Build loads configuration with, lowest precedence first: the config file,
// the environment (PYNAB_ prefix, so the token lives in PYNAB_TOKEN, with a
// .env file honored), then command-line flags. An empty cfgFile falls back
// to $HOME/.config/pynab/config.yaml, which may be absent; a cfgFile passed
// explicitly must exist.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	_ = gotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PYNAB")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/pynab")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}
