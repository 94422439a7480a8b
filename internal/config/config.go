// Package config описывает настройки оркестратора и их загрузку из YAML-файла
// с переопределением секретов через переменные окружения.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура настроек.
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer      `yaml:"http_server"`
	JWTToken        `yaml:"jwttoken"`
	Admin           `yaml:"admin"`
	Downstream      `yaml:"downstream"`
	AnalysisCache   `yaml:"analysis_cache"`
	RedisConnection `yaml:"redis_connection"`
	RabbitMQ        `yaml:"rabbitmq"`
	RateLimit       `yaml:"rate_limit"`
}

// HTTPServer настройки HTTP-сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"60s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// JWTToken секрет подписи токенов.
type JWTToken struct {
	JWTSecretKey string `yaml:"jwt_secret_key" env:"JWT_SECRET"`
}

// Admin статические учётные данные администратора, base64("username:password").
type Admin struct {
	Credentials string `yaml:"credentials" env:"ADMIN_CREDENTIALS"`
}

// Downstream адреса нижележащих сервисов.
type Downstream struct {
	CrudURL         string        `yaml:"crud_url" env:"CRUD_URL" env-default:"http://localhost:8081"`
	AnalysisURL     string        `yaml:"analysis_url" env:"ANALYSIS_URL" env-default:"http://localhost:8000"`
	TimeoutUpstream time.Duration `yaml:"timeout" env-default:"30s"`
}

// Бэкенды кэша анализа.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// AnalysisCache настройки кэша результатов анализа.
//
// MaxEntries > 0 ограничивает in-memory кэш политикой LRU, 0 — без ограничений.
// По умолчанию одновременные промахи по одному ключу объединяются в один вызов.
type AnalysisCache struct {
	Backend           string `yaml:"backend" env-default:"memory"`
	MaxEntries        int    `yaml:"max_entries"`
	DisableCoalescing bool   `yaml:"disable_coalescing"`
}

// RedisConnection настройки подключения к redis.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
	KeyPrefix    string        `yaml:"key_prefix" env-default:"analysis:"`
}

// RabbitMQ настройки публикации событий учётных записей. Пустой URL отключает публикацию.
type RabbitMQ struct {
	URL        string        `yaml:"url" env:"RABBITMQ_URL"`
	Exchange   string        `yaml:"exchange" env-default:"jboard.events"`
	Retries    int           `yaml:"retries" env-default:"3"`
	RetryDelay time.Duration `yaml:"retry_delay" env-default:"2s"`
}

// RateLimit ограничение частоты запросов на вход и регистрацию.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"5"`
	Burst int     `yaml:"burst" env-default:"10"`
}

// Ошибки проверки конфигурации.
var (
	ErrNoSecret           = errors.New("jwt secret key is required")
	ErrNoAdminCredentials = errors.New("admin credentials are required")
	ErrUnknownBackend     = errors.New("unknown analysis cache backend")
	ErrNoRedisAddress     = errors.New("redis address is required for redis cache backend")
	ErrUpstreamTimeout    = errors.New("downstream timeout must be shorter than the http write timeout")
)

// MustLoad загружает конфиг из файла CONFIG_PATH и завершает процесс при ошибке.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}
	return cfg
}

// Load читает конфиг из файла и проверяет обязательные поля.
func Load(path string) (*Config, error) {
	const op = "config.Load"
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%s: file %s: %w", op, path, err)
	}
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// Validate проверяет обязательные настройки.
func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return ErrNoSecret
	}
	if c.Credentials == "" {
		return ErrNoAdminCredentials
	}
	// ответ нижележащего сервиса должен успеть уйти клиенту до WriteTimeout
	if c.TimeoutHTTP > 0 && c.TimeoutUpstream >= c.TimeoutHTTP {
		return fmt.Errorf("%w: %s >= %s", ErrUpstreamTimeout, c.TimeoutUpstream, c.TimeoutHTTP)
	}
	switch c.Backend {
	case CacheBackendMemory:
	case CacheBackendRedis:
		if c.AddressRedis == "" {
			return ErrNoRedisAddress
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	return nil
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"JWTToken:\n"+
			"  JWTSecretKey: %s\n"+
			"Admin:\n"+
			"  Credentials: %s\n"+
			"Downstream:\n"+
			"  CrudURL: %s\n"+
			"  AnalysisURL: %s\n"+
			"  Timeout: %s\n"+
			"AnalysisCache:\n"+
			"  Backend: %s\n"+
			"  MaxEntries: %d\n"+
			"  DisableCoalescing: %t\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  Password: %s\n"+
			"  DB: %d\n"+
			"RabbitMQ:\n"+
			"  URL: %s\n"+
			"  Exchange: %s\n"+
			"RateLimit:\n"+
			"  RPS: %g\n"+
			"  Burst: %d\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		mask(c.JWTSecretKey),
		mask(c.Credentials),
		c.CrudURL,
		c.AnalysisURL,
		c.TimeoutUpstream,
		c.Backend,
		c.MaxEntries,
		c.DisableCoalescing,
		c.AddressRedis,
		mask(c.RedisConnection.Password),
		c.DB,
		mask(c.RabbitMQ.URL),
		c.Exchange,
		c.RPS,
		c.Burst,
	)
}
