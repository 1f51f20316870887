package server

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// AppConfig defines application configuration loaded from files and environment.
type AppConfig struct {
	Env      string         `koanf:"env"`
	HTTP     HTTPConfig     `koanf:"http"`
	Database DatabaseConfig `koanf:"database"`
	JWT      JWTConfig      `koanf:"jwt"`
	Migrate  MigrateConfig  `koanf:"migrate"`
}

type HTTPConfig struct {
	Addr string `koanf:"addr"`
}

type DatabaseConfig struct {
	Driver string `koanf:"driver"`
	DSN    string `koanf:"dsn"`
}

type JWTConfig struct {
	Secret string `koanf:"secret"`
	TTL    string `koanf:"ttl"`
}

type MigrateConfig struct {
	OnStart bool `koanf:"on_start"`
	Seed    bool `koanf:"seed"`
}

var (
	cfgOnce sync.Once
	cfgInst *AppConfig
)

// GetConfig loads and returns the singleton AppConfig. Loading order:
// 1) config/config.yaml (optional)
// 2) config/config.<APP_ENV>.yaml (optional), APP_ENV defaults to "local"
// 3) Environment variables with prefix DEVHUB_ mapped using __ as nested
// separator, e.g. DEVHUB_DATABASE__DSN, DEVHUB_JWT__SECRET
func GetConfig() *AppConfig {
	cfgOnce.Do(func() {
		k := koanf.New(".")
		configDir := os.Getenv("CONFIG_DIR")
		if configDir == "" {
			configDir = "config"
		}
		// Whether to load files (default: disabled to keep tests isolated)
		loadFiles := strings.EqualFold(os.Getenv("APP_CONFIG_FILES"), "1") || strings.EqualFold(os.Getenv("APP_CONFIG_FILES"), "true")
		if loadFiles {
			base := filepath.Join(configDir, "config.yaml")
			if _, err := os.Stat(base); err == nil {
				if err := k.Load(file.Provider(base), yaml.Parser()); err != nil {
					log.Printf("config: failed loading base: %v", err)
				}
			}
		}
		envName := os.Getenv("APP_ENV")
		if envName == "" {
			envName = "local"
		}
		if loadFiles {
			envFile := filepath.Join(configDir, "config."+envName+".yaml")
			if _, err := os.Stat(envFile); err == nil {
				if err := k.Load(file.Provider(envFile), yaml.Parser()); err != nil {
					log.Printf("config: failed loading env file: %v", err)
				}
			}
		}
		_ = k.Load(env.Provider("DEVHUB_", ".", func(s string) string {
			// DEVHUB_DATABASE__DSN -> database.dsn
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "DEVHUB_")), "__", ".")
		}), nil)

		var c AppConfig
		if err := k.Unmarshal("", &c); err != nil {
			log.Printf("config: unmarshal error: %v", err)
		}
		if c.Env == "" {
			c.Env = envName
		}
		cfgInst = &c
	})
	return cfgInst
}

// Addr returns the listen address, defaulting to :8080.
func (c *AppConfig) Addr() string {
	if c != nil && strings.TrimSpace(c.HTTP.Addr) != "" {
		return strings.TrimSpace(c.HTTP.Addr)
	}
	return ":8080"
}

// DatabaseDSN returns the effective DSN (config first, then DATABASE_DSN env).
// Empty means run on the in-memory store.
func (c *AppConfig) DatabaseDSN() string {
	if c != nil && c.Database.DSN != "" {
		return strings.TrimSpace(c.Database.DSN)
	}
	return strings.TrimSpace(os.Getenv("DATABASE_DSN"))
}

// SigningKey returns the symmetric token signing key. Outside local env a
// missing secret is fatal rather than silently running with the dev key.
func (c *AppConfig) SigningKey() []byte {
	secret := ""
	if c != nil {
		secret = strings.TrimSpace(c.JWT.Secret)
	}
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		if c != nil && c.Env != "local" {
			log.Fatalf("config: jwt secret is required in env %q", c.Env)
		}
		secret = "devhub-local-signing-key"
	}
	return []byte(secret)
}

// TokenTTL returns the configured token lifetime, defaulting to one hour.
func (c *AppConfig) TokenTTL() time.Duration {
	if c != nil && strings.TrimSpace(c.JWT.TTL) != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(c.JWT.TTL)); err == nil && d > 0 {
			return d
		}
		log.Printf("config: invalid jwt.ttl %q, using default", c.JWT.TTL)
	}
	return time.Hour
}
