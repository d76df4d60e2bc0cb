package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage    StorageConfig    `yaml:"storage"`
	Repository RepositoryConfig `yaml:"repository"`
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Worker     WorkerConfig     `yaml:"worker"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type ServerConfig struct {
	Enabled      bool   `yaml:"enabled"`
	Port         string `yaml:"port"`
	Host         string `yaml:"host"`
	RateLimitRPM int    `yaml:"rate_limit_rpm"`
}

type LoggingConfig struct {
	Development bool   `yaml:"development"`
	Path        string `yaml:"path"`
}

type RepositoryConfig struct {
	Type string `yaml:"type"` // "file" или "inmemory"
}

type WorkerConfig struct {
	Interval time.Duration `yaml:"interval"`
}

func Default() *Config {
	return &Config{
		Storage:    StorageConfig{Path: "tasks.csv"},
		Repository: RepositoryConfig{Type: "file"},
		Server: ServerConfig{
			Enabled:      false,
			Host:         "localhost",
			Port:         "8080",
			RateLimitRPM: 100,
		},
		Logging: LoggingConfig{
			Development: true,
			Path:        "todo.log",
		},
		Worker: WorkerConfig{Interval: time.Minute},
	}
}

// Load читает config.yml по указанному пути. Отсутствующий файл - не ошибка:
// утилита должна запускаться и без конфига, на значениях по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("не могу открыть %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
