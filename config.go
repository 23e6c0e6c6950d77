package staticcache

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures the server. cmd fills in defaults for anything
// the config file and flags leave unset.
type Config struct {
	// Port to listen on.
	Port int `yaml:"port"`
	// ServerRoot is the document root served content is resolved
	// against.
	ServerRoot string `yaml:"serverRoot"`
	// ServerFiles is the directory holding system files, i.e. the
	// not-found asset.
	ServerFiles string `yaml:"serverFiles"`
	// CacheSize is the maximum number of cached entries. Zero means
	// unbounded.
	CacheSize int `yaml:"cacheSize"`
	// Storage selects the content backend: "fs" (default) or "sqlite".
	Storage string `yaml:"storage"`
	// DB is the sqlite DSN when the sqlite backend is selected.
	DB string `yaml:"db"`
}

// GetConfig reads and parses a YAML config file.
func GetConfig(filename string) (Config, error) {
	var config Config
	configBytes, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = yaml.Unmarshal(configBytes, &config)
	return config, err
}
