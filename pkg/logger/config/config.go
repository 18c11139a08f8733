package config

import "errors"

const (
	DEBUG_LEVEL = -1
	INFO_LEVEL  = 0
	WARN_LEVEL  = 1
	ERROR_LEVEL = 2
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (cfg Configuration) Validate() error {
	if cfg.Level < DEBUG_LEVEL || cfg.Level > ERROR_LEVEL {
		return errors.New("log level must be between -1 (debug) and 2 (error)")
	}
	if cfg.TimeFormat == "" {
		return errors.New("log time format must not be empty")
	}
	return nil
}
