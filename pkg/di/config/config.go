package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct{}

func New() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
		// no config.yaml in the working directory: env vars and defaults apply
	}

	config := &Config{}
	return config, nil
}
