package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ferryhill/kanbord/internal/paths"
	"gopkg.in/yaml.v3"
)

const (
	DefaultServerPort   = 54021
	DefaultPostgresPort = 5432
)

type ServerConfig struct {
	Port int `yaml:"port"`
}

// RoleCredentials holds the credentials for one Postgres role.
// Passwords may be left empty and resolved from the vault at open time.
type RoleCredentials struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type PostgresConfig struct {
	Host    string          `yaml:"host"`
	Port    int             `yaml:"port"`
	DBName  string          `yaml:"dbname"`
	SSLMode string          `yaml:"sslmode"`
	App     RoleCredentials `yaml:"app"`
	Admin   RoleCredentials `yaml:"admin"`
}

type VaultConfig struct {
	Backend string `yaml:"backend"` // only "keychain" for now
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Postgres PostgresConfig `yaml:"postgres"`
	Vault    VaultConfig    `yaml:"vault"`
}

func defaults() Config {
	return Config{
		Server: ServerConfig{Port: DefaultServerPort},
		Postgres: PostgresConfig{
			Host:    "127.0.0.1",
			Port:    DefaultPostgresPort,
			DBName:  "kanbord",
			SSLMode: "disable",
			App:     RoleCredentials{User: "kanbord_app"},
			Admin:   RoleCredentials{User: "kanbord_admin"},
		},
		Vault: VaultConfig{Backend: "keychain"},
	}
}

// Path returns the expected path to the config.yaml file.
func Path() string {
	return filepath.Join(paths.Home(), "config.yaml")
}

// Load reads configuration from config.yaml if it exists.
// Missing file is not an error; defaults are returned.
func Load() (Config, error) {
	cfg := defaults()
	p := Path()
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(b, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	// Merge: override defaults with provided values if non-zero
	if fileCfg.Server.Port != 0 {
		cfg.Server.Port = fileCfg.Server.Port
	}
	if fileCfg.Postgres.Host != "" {
		cfg.Postgres.Host = fileCfg.Postgres.Host
	}
	if fileCfg.Postgres.Port != 0 {
		cfg.Postgres.Port = fileCfg.Postgres.Port
	}
	if fileCfg.Postgres.DBName != "" {
		cfg.Postgres.DBName = fileCfg.Postgres.DBName
	}
	if fileCfg.Postgres.SSLMode != "" {
		cfg.Postgres.SSLMode = fileCfg.Postgres.SSLMode
	}
	if fileCfg.Postgres.App.User != "" {
		cfg.Postgres.App.User = fileCfg.Postgres.App.User
	}
	if fileCfg.Postgres.App.Password != "" {
		cfg.Postgres.App.Password = fileCfg.Postgres.App.Password
	}
	if fileCfg.Postgres.Admin.User != "" {
		cfg.Postgres.Admin.User = fileCfg.Postgres.Admin.User
	}
	if fileCfg.Postgres.Admin.Password != "" {
		cfg.Postgres.Admin.Password = fileCfg.Postgres.Admin.Password
	}
	if fileCfg.Vault.Backend != "" {
		cfg.Vault.Backend = fileCfg.Vault.Backend
	}
	return cfg, nil
}
