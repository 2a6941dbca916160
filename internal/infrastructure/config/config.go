package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth     AuthConfig
	Postgres PostgresConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Gemini   GeminiConfig
	Notify   NotifyConfig
}

// AuthConfig defines credential parameters.
type AuthConfig struct {
	JWTSecret       string        `env:"JWT_SECRET"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL,  default=30m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL, default=168h"`
	BcryptCost      int           `env:"BCRYPT_COST,       default=12"`
}

// PostgresConfig holds relational store settings.
type PostgresConfig struct {
	DSN           string `env:"POSTGRES_DSN, default=postgres://localhost:5432/recruitment_crm"`
	MaxConns      int32  `env:"POSTGRES_MAX_CONNS, default=10"`
	MinConns      int32  `env:"POSTGRES_MIN_CONNS, default=2"`
	RunMigrations bool   `env:"POSTGRES_RUN_MIGRATIONS, default=true"`
	MigrationsDir string `env:"POSTGRES_MIGRATIONS_DIR, default=migrations"`
}

// MongoConfig holds document store settings.
type MongoConfig struct {
	URI         string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database    string `env:"MONGO_DB,  default=recruitment_crm"`
	MaxPoolSize uint64 `env:"MONGO_MAX_POOL_SIZE, default=20"`
}

// RedisConfig holds cache settings.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int    `env:"REDIS_DB,   default=0"`
	PoolSize int    `env:"REDIS_POOL_SIZE, default=10"`
}

// GeminiConfig holds the LLM provider settings for CV/job matching.
type GeminiConfig struct {
	APIKey   string  `env:"GEMINI_API_KEY"`
	Model    string  `env:"GEMINI_MODEL, default=gemini-2.5-flash"`
	MinScore float64 `env:"MATCH_MIN_SCORE, default=0"`
}

// NotifyConfig controls the notification dispatcher.
type NotifyConfig struct {
	Workers int `env:"NOTIFY_WORKERS, default=4"`
}

// Load reads configuration from the environment. A local .env file is
// applied first when present so development setups need no exported vars.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
