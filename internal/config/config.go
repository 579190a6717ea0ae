package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	GraphSourcePostgres = "postgres"
	GraphSourceFile     = "file"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Graph     GraphConfig
	Projector ProjectorConfig
	Log       LogConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// GraphConfig - откуда читать граф и сколько ребер держать в кеше
type GraphConfig struct {
	Source       string
	File         string
	MaxCacheSize int
}

type ProjectorConfig struct {
	MaxCacheSize int
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
	BatchSize         int
}

// Load reads .env when present and the process environment. Environment wins.
func Load() (*Config, error) {
	return LoadFile(".env")
}

func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Graph: GraphConfig{
			Source:       strings.ToLower(strings.TrimSpace(v.GetString("GRAPH_SOURCE"))),
			File:         v.GetString("GRAPH_FILE"),
			MaxCacheSize: v.GetInt("GRAPH_MAX_CACHE_SIZE"),
		},
		Projector: ProjectorConfig{
			MaxCacheSize: v.GetInt("PROJECTOR_MAX_CACHE_SIZE"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        v.GetInt("WORKER_MAX_RETRIES"),
			BatchSize:         v.GetInt("WORKER_BATCH_SIZE"),
		},
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Set default values if not provided
func (c *Config) setDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Graph.Source == "" {
		c.Graph.Source = GraphSourcePostgres
	}
	if c.Graph.MaxCacheSize == 0 {
		c.Graph.MaxCacheSize = 1_000_000
	}
	if c.Projector.MaxCacheSize == 0 {
		c.Projector.MaxCacheSize = 10_000
	}
	if c.Worker.ConsumerGroup == "" {
		c.Worker.ConsumerGroup = "asgard-matrix-workers"
	}
	if c.Worker.StreamReadTimeout == 0 {
		c.Worker.StreamReadTimeout = 1000 * time.Millisecond
	}
	if c.Worker.MaxRetries == 0 {
		c.Worker.MaxRetries = 3
	}
	if c.Worker.BatchSize == 0 {
		c.Worker.BatchSize = 10
	}
}

func (c *Config) Validate() error {
	switch c.Graph.Source {
	case GraphSourcePostgres:
	case GraphSourceFile:
		if c.Graph.File == "" {
			return fmt.Errorf("GRAPH_FILE is required when GRAPH_SOURCE=%s", GraphSourceFile)
		}
	default:
		return fmt.Errorf("unknown GRAPH_SOURCE %q", c.Graph.Source)
	}
	if c.Graph.MaxCacheSize < 0 {
		return fmt.Errorf("GRAPH_MAX_CACHE_SIZE must be positive, got %d", c.Graph.MaxCacheSize)
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
