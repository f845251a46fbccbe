// Package config loads the service configuration from an optional TOML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mugiliam/contentcatalog/internal/db/dbmanager"
	"github.com/mugiliam/contentcatalog/internal/viewstore"
	"github.com/mugiliam/contentcatalog/pkg/apperrors"
	"github.com/rs/zerolog"
)

const DefaultFile = "contentcatalog.toml"

var ErrInvalidConfig apperrors.Error = apperrors.New("invalid configuration")

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Catalogs CatalogsConfig `toml:"catalogs"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Views    ViewsConfig    `toml:"views"`
	Log      LogConfig      `toml:"log"`
}

type ServerConfig struct {
	Host         string        `toml:"host"`
	Port         int           `toml:"port"`
	CORSOrigins  []string      `toml:"cors_origins"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
}

type CatalogsConfig struct {
	// Dir is a directory of catalog documents. Empty means none.
	Dir      string `toml:"dir"`
	Watch    bool   `toml:"watch"`
	Embedded bool   `toml:"embedded"`
}

type DatabaseConfig struct {
	DSN      string `toml:"dsn"`
	MaxConns int32  `toml:"max_conns"`
}

type RedisConfig struct {
	Address  string        `toml:"address"`
	Password string        `toml:"password"`
	DB       int           `toml:"db"`
	TTL      time.Duration `toml:"ttl"`
}

type ViewsConfig struct {
	Backend string        `toml:"backend"`
	TTL     time.Duration `toml:"ttl"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Catalogs: CatalogsConfig{
			Embedded: true,
		},
		Database: DatabaseConfig{
			MaxConns: 4,
		},
		Views: ViewsConfig{
			Backend: viewstore.BackendMemory,
			TTL:     time.Hour,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults and applies environment overrides. An
// empty path reads DefaultFile if it exists; a path that was asked for must
// exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, ErrInvalidConfig.MsgErr("unable to read "+path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a TOML document over the defaults. Environment is not
// consulted.
func Parse(doc string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(doc, cfg); err != nil {
		return nil, ErrInvalidConfig.Err(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var problems []error
	if v, ok := os.LookupEnv("CATALOG_SERVER_HOST"); ok {
		c.Server.Host = v
	}
	if v, ok := os.LookupEnv("CATALOG_SERVER_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			problems = append(problems, fmt.Errorf("CATALOG_SERVER_PORT: %w", err))
		}
		c.Server.Port = port
	}
	if v, ok := os.LookupEnv("CATALOG_CORS_ORIGINS"); ok {
		c.Server.CORSOrigins = splitList(v)
	}
	if v, ok := os.LookupEnv("CATALOG_DIR"); ok {
		c.Catalogs.Dir = v
	}
	if v, ok := os.LookupEnv("CATALOG_WATCH"); ok {
		watch, err := strconv.ParseBool(v)
		if err != nil {
			problems = append(problems, fmt.Errorf("CATALOG_WATCH: %w", err))
		}
		c.Catalogs.Watch = watch
	}
	if v, ok := os.LookupEnv("CATALOG_DATABASE_DSN"); ok {
		c.Database.DSN = v
	}
	if v, ok := os.LookupEnv("CATALOG_REDIS_ADDRESS"); ok {
		c.Redis.Address = v
	}
	if v, ok := os.LookupEnv("CATALOG_REDIS_PASSWORD"); ok {
		c.Redis.Password = v
	}
	if v, ok := os.LookupEnv("CATALOG_VIEWS_BACKEND"); ok {
		c.Views.Backend = v
	}
	if v, ok := os.LookupEnv("CATALOG_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if len(problems) > 0 {
		return ErrInvalidConfig.Err(problems...)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Validate reports every problem of the configuration at once.
func (c *Config) Validate() error {
	var problems []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Errorf("invalid server port %d", c.Server.Port))
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		problems = append(problems, errors.New("server timeouts must not be negative"))
	}
	if c.Catalogs.Watch && c.Catalogs.Dir == "" {
		problems = append(problems, errors.New("catalogs.watch requires catalogs.dir"))
	}
	if c.Database.MaxConns < 0 {
		problems = append(problems, fmt.Errorf("invalid database max_conns %d", c.Database.MaxConns))
	}
	switch c.Views.Backend {
	case viewstore.BackendMemory:
	case viewstore.BackendRedis:
		if c.Redis.Address == "" {
			problems = append(problems, errors.New("views backend redis requires redis.address"))
		}
	default:
		problems = append(problems, fmt.Errorf("unknown views backend %q", c.Views.Backend))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	if len(problems) > 0 {
		return ErrInvalidConfig.Err(problems...)
	}
	return nil
}

func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

func (c *Config) LogLevel() zerolog.Level {
	l, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return l
}

func (c *Config) ViewStore() viewstore.Config {
	return viewstore.Config{
		Backend: c.Views.Backend,
		TTL:     c.Views.TTL,
		Redis: viewstore.RedisConfig{
			Address:  c.Redis.Address,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			TTL:      c.Redis.TTL,
		},
	}
}

func (c *Config) DB() dbmanager.Config {
	return dbmanager.Config{
		DSN:      c.Database.DSN,
		MaxConns: c.Database.MaxConns,
	}
}

var current atomic.Pointer[Config]

// Current returns the configuration installed with Set, or the defaults.
func Current() *Config {
	if c := current.Load(); c != nil {
		return c
	}
	return Default()
}

func Set(c *Config) {
	current.Store(c)
}
