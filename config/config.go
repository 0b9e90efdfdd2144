package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultFileName is looked for in the current directory when no --config
// flag is given. Its absence is not an error.
const DefaultFileName = "embedviz.toml"

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Extract ExtractConfig `toml:"extract"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Dir  string `toml:"dir"`
	Open bool   `toml:"open"`
}

type ExtractConfig struct {
	Database   string `toml:"database"`
	Prompts    string `toml:"prompts"`
	Output     string `toml:"output"`
	MaxWords   int    `toml:"max_words"`
	Dimensions int    `toml:"dimensions"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port: 8000,
			Open: true,
		},
		Extract: ExtractConfig{
			Database:   "vector_db.sqlite",
			Prompts:    "prompts",
			Output:     "embedding-data.json",
			MaxWords:   900,
			Dimensions: 128,
		},
	}
}

// Load reads a toml config file over the defaults. An empty path means the
// optional DefaultFileName; a path given explicitly must be readable.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
