package config

import (
	"encoding/json"
	"log/slog"
	"os"
)

var Config Configuration

type Configuration struct {
	LogLevel int    `json:"logLevel"`
	Seed     uint64 `json:"seed"`
}

// LoadConfig reads the JSON config at path, or ./config.json when path is
// empty. Any failure falls back to the zero defaults: log level 0 and the
// deterministic seed 0.
func LoadConfig(path string) {
	var c = Configuration{}

	var cf []byte
	var err error
	if path != "" {
		cf, err = os.ReadFile(path)
	} else {
		cf, err = os.ReadFile("config.json")
	}
	if err != nil {
		slog.Info("failed to open config at path provided, using default config instead")
	}

	err = json.Unmarshal(cf, &c)
	if err != nil {
		slog.Info("failed to read configuration, using default config instead...", "error", err)
	}

	Config = c
	return
}
