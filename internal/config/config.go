package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Загрузка конфигурации из config.yaml через cleanenv

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	InflightMemory = "memory"
	InflightRedis  = "redis"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Web       WebConfig       `yaml:"web"`
	Logger    LoggerConfig    `yaml:"logger"`
	Storage   StorageConfig   `yaml:"storage"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Redis     RedisConfig     `yaml:"redis"`
	Snapshot  SnapshotConfig  `yaml:"snapshot"`
	Submit    SubmitConfig    `yaml:"submit"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" env-default:"3s"`
}

type WebConfig struct {
	SessionCookie  string        `yaml:"session_cookie" env-default:"conv_session"`
	SessionIdleTTL time.Duration `yaml:"session_idle_ttl" env-default:"24h"`
	DefaultFrom    string        `yaml:"default_from" env-default:"BTC"`
	DefaultTo      string        `yaml:"default_to" env-default:"USD"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"` // debug|info|warn|error
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"` // text|json
}

type StorageConfig struct {
	Driver       string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"` // memory|postgres
	EnsureSchema bool   `yaml:"ensure_schema" env-default:"true"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User            string        `yaml:"user" env:"POSTGRES_USER" env-default:"postgres"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"postgres"`
	DBName          string        `yaml:"dbname" env:"POSTGRES_DB" env-default:"conversions"`
	SSLMode         string        `yaml:"sslmode" env-default:"disable"`
	Timeout         time.Duration `yaml:"timeout" env-default:"5s"`
	MaxConns        int32         `yaml:"max_conns" env-default:"10"`
	MinConns        int32         `yaml:"min_conns" env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"30m"`
}

type RedisConfig struct {
	Addr        string        `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db" env-default:"0"`
	DialTimeout time.Duration `yaml:"dial_timeout" env-default:"3s"`
	KeyPrefix   string        `yaml:"key_prefix" env-default:"conversion:inflight:"`
}

// SnapshotConfig - пустой Path означает встроенный набор данных
type SnapshotConfig struct {
	Path string `yaml:"path" env:"SNAPSHOT_PATH"`
}

type SubmitConfig struct {
	Delay          time.Duration `yaml:"delay" env-default:"2s"`
	Timeout        time.Duration `yaml:"timeout" env-default:"30s"`
	FeeRate        float64       `yaml:"fee_rate" env-default:"0.002"`
	Retention      time.Duration `yaml:"retention" env-default:"1h"`
	InflightDriver string        `yaml:"inflight_driver" env:"INFLIGHT_DRIVER" env-default:"memory"` // memory|redis
}

type SchedulerConfig struct {
	Enabled  bool          `yaml:"enabled" env-default:"false"`
	Interval time.Duration `yaml:"interval" env-default:"5m"`
}

type TelegramConfig struct {
	Enabled         bool          `yaml:"enabled" env-default:"false"`
	Token           string        `yaml:"token" env:"TELEGRAM_BOT_TOKEN"`
	LongPollTimeout time.Duration `yaml:"long_poll_timeout" env-default:"10s"`
	HistoryLimit    int           `yaml:"history_limit" env-default:"10"`
}

// LoadConfig - путь из флага -c или CONFIG_PATH; без файла только env и значения по умолчанию
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(fetchConfigPath())
}

func LoadConfigFrom(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate - проверка значений, которые cleanenv не проверяет
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Storage.Driver) {
	case StorageMemory, StoragePostgres:
	default:
		errs = append(errs, fmt.Errorf("storage.driver: unknown driver %q", c.Storage.Driver))
	}
	switch strings.ToLower(c.Submit.InflightDriver) {
	case InflightMemory, InflightRedis:
	default:
		errs = append(errs, fmt.Errorf("submit.inflight_driver: unknown driver %q", c.Submit.InflightDriver))
	}
	if c.Submit.FeeRate < 0 {
		errs = append(errs, errors.New("submit.fee_rate must not be negative"))
	}
	if c.Submit.Delay < 0 {
		errs = append(errs, errors.New("submit.delay must not be negative"))
	}
	if c.Scheduler.Enabled && c.Scheduler.Interval <= 0 {
		errs = append(errs, errors.New("scheduler.interval must be positive"))
	}
	// Если бот включён, отсутствие токена - ошибка конфигурации
	if c.Telegram.Enabled && strings.TrimSpace(c.Telegram.Token) == "" {
		errs = append(errs, errors.New("telegram enabled but TELEGRAM_BOT_TOKEN is empty"))
	}
	return errors.Join(errs...)
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
