// Package config provides environment-driven configuration for NoteDesk.
package config

import "time"

type Config struct {
	App      AppConfig      `env-prefix:"APP_"`
	Store    StoreConfig    `env-prefix:"STORE_"`
	Autosave AutosaveConfig `env-prefix:"AUTOSAVE_"`
}

type AppConfig struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
}

type StoreConfig struct {
	DataDir string `env:"DATA_DIR" env-default:"data"`
}

type AutosaveConfig struct {
	Interval  time.Duration `env:"INTERVAL" env-default:"30s"`
	StopGrace time.Duration `env:"STOP_GRACE" env-default:"5s"`
}
