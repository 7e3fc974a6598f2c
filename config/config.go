package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de armazenamento suportados.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config armazena todas as configurações do serviço.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Persistência
	StoreDriver   string
	DatabaseURL   string
	DBTimeout     time.Duration
	MigrationsDir string

	// Cache (Redis)
	CacheEnabled bool
	RedisAddr    string
	CacheTTL     time.Duration

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// O .env (se existir) já foi carregado pelo godotenv no main.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENV"),
		LogLevel:    strings.ToLower(v.GetString("LOG_LEVEL")),

		StoreDriver:   strings.ToLower(v.GetString("STORE_DRIVER")),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		DBTimeout:     time.Duration(v.GetInt("DB_TIMEOUT_SEC")) * time.Second,
		MigrationsDir: v.GetString("MIGRATIONS_DIR"),

		CacheEnabled: v.GetBool("CACHE_ENABLED"),
		RedisAddr:    v.GetString("REDIS_ADDR"),
		CacheTTL:     time.Duration(v.GetInt("CACHE_TTL_SEC")) * time.Second,

		RateLimitMaxRequests: v.GetInt("RATE_LIMIT_MAX_REQUESTS"),
		RateLimitPeriod:      time.Duration(v.GetInt("RATE_LIMIT_PERIOD_MIN")) * time.Minute,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_TIMEOUT_SEC", 5)
	v.SetDefault("MIGRATIONS_DIR", "./sql")

	v.SetDefault("CACHE_ENABLED", true)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("CACHE_TTL_SEC", 300)

	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_PERIOD_MIN", 1)
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL must be set when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	case StoreDriverMemory:
		// Sem Postgres, o Redis também não é usado.
		c.CacheEnabled = false
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.DBTimeout <= 0 {
		return fmt.Errorf("config: DB_TIMEOUT_SEC must be positive")
	}
	return nil
}
