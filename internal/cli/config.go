package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Cache backend names accepted in the config file.
const (
	cacheFile  = "file"
	cacheRedis = "redis"
	cacheOff   = "off"
)

// Config holds the user-level defaults read from
// ~/.config/make-expr-answer/config.toml. Command-line flags override
// every field.
type Config struct {
	// Workers is the default solver parallelism; below 2 the solver runs
	// single-threaded with deterministic output order.
	Workers int `toml:"workers"`

	// Cache selects the count-cache backend: "file", "redis" or "off".
	Cache string `toml:"cache"`

	// Redis is the address of the Redis backend ("host:port").
	Redis string `toml:"redis"`
}

func defaultConfig() Config {
	return Config{
		Workers: 1,
		Cache:   cacheFile,
		Redis:   "localhost:6379",
	}
}

// loadConfig reads the config file, returning defaults when it does not
// exist. Unknown keys are ignored; a malformed file is an error.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	dir, err := configDir()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
