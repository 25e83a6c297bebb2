package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	pkgstrings "retention/pkg/platform/strings"
)

// Storage backends for the register.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Server captures process level configuration.
type Server struct {
	Addr            string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration

	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string

	Storage     string
	DatabaseURL string
	SeedFile    string

	AuditBuffer         int
	MaxGenerateAttempts int
	DisableRateLimiting bool

	Redis RedisConfig
	Kafka KafkaConfig
}

// RedisConfig configures the classification cache. An empty URL disables it.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CacheTTL     time.Duration
}

// KafkaConfig configures the audit mirror. No brokers disables it.
type KafkaConfig struct {
	Brokers           []string
	Topic             string
	Partitions        int32
	ReplicationFactor int16
}

// FromEnv builds a Server config from environment variables so main stays
// lean. A .env file in the working directory is loaded first when present;
// variables already set in the environment win.
func FromEnv() (Server, error) {
	_ = godotenv.Load()

	cfg := Server{
		Addr:            getEnv("RETENTION_ADDR", ":8080"),
		ShutdownTimeout: 10 * time.Second,
		JWTSigningKey:   os.Getenv("JWT_SIGNING_KEY"),
		JWTIssuer:       getEnv("JWT_ISSUER", "retention"),
		JWTAudience:     getEnv("JWT_AUDIENCE", "retention-api"),
		Storage:         strings.ToLower(getEnv("RETENTION_STORAGE", StorageMemory)),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SeedFile:        os.Getenv("RETENTION_SEED_FILE"),
		// DISABLE_RATE_LIMITING=true turns the per-user limiter off for demos.
		DisableRateLimiting: os.Getenv("DISABLE_RATE_LIMITING") == "true",
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers: pkgstrings.SplitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   getEnv("KAFKA_AUDIT_TOPIC", "retention.audit"),
		},
	}

	if cfg.JWTSigningKey == "" {
		// Use a default for development - should be overridden in production
		cfg.JWTSigningKey = "dev-secret-key-change-in-production"
	}

	var err error
	if cfg.LogLevel, err = parseLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return Server{}, err
	}
	if cfg.AuditBuffer, err = getInt("AUDIT_BUFFER", 256); err != nil {
		return Server{}, err
	}
	if cfg.MaxGenerateAttempts, err = getInt("NUMBER_GENERATE_ATTEMPTS", 5); err != nil {
		return Server{}, err
	}
	if cfg.Redis.CacheTTL, err = getDuration("CLASSIFICATION_CACHE_TTL", 5*time.Minute); err != nil {
		return Server{}, err
	}
	partitions, err := getInt("KAFKA_AUDIT_PARTITIONS", 3)
	if err != nil {
		return Server{}, err
	}
	cfg.Kafka.Partitions = int32(partitions)
	replicas, err := getInt("KAFKA_AUDIT_REPLICATION", 1)
	if err != nil {
		return Server{}, err
	}
	cfg.Kafka.ReplicationFactor = int16(replicas)

	return cfg, cfg.Validate()
}

// Validate rejects combinations main cannot start with.
func (s Server) Validate() error {
	switch s.Storage {
	case StorageMemory:
	case StoragePostgres:
		if s.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for %s storage", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown RETENTION_STORAGE %q", s.Storage)
	}
	if s.MaxGenerateAttempts <= 0 {
		return fmt.Errorf("NUMBER_GENERATE_ATTEMPTS must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
