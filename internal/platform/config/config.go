package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	strutil "github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/strings"
)

// Config captures all service configuration. Every field has a development
// default so the service boots with zero environment variables (memory
// stores, logging email sender, no Kafka).
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration

	// DatabaseURL selects the PostgreSQL-backed stores when set; the memory
	// stores are used otherwise.
	DatabaseURL string

	Redis    RedisConfig
	Kafka    KafkaConfig
	SMTP     SMTPConfig
	Registry RegistryConfig

	// ReminderCooldown is the minimum interval between renewal reminders for
	// one document. Zero disables the guard and matches the legacy behavior
	// of allowing on-demand resends.
	ReminderCooldown time.Duration
}

// RedisConfig configures the registry lookup cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the audit outbox publisher. Empty Brokers disables
// publishing; outbox rows then stay queued until a publisher drains them.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// SMTPConfig configures the renewal reminder sender. Empty Host selects the
// logging sender.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// RegistryConfig configures the company registry lookup collaborator.
type RegistryConfig struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Addr:            envString("OPTMARK_ADDR", ":8080"),
		ShutdownTimeout: envDuration("OPTMARK_SHUTDOWN_TIMEOUT", 10*time.Second),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers: envList("KAFKA_BROKERS"),
			Topic:   envString("KAFKA_AUDIT_TOPIC", "optmark.audit.events"),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     envInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     envString("SMTP_FROM", "KYC Compliance <compliance@optmark.example>"),
		},
		Registry: RegistryConfig{
			BaseURL:  envString("COMPANIES_HOUSE_BASE_URL", "https://api.company-information.service.gov.uk"),
			APIKey:   os.Getenv("COMPANIES_HOUSE_API_KEY"),
			Timeout:  envDuration("REGISTRY_TIMEOUT", 10*time.Second),
			CacheTTL: envDuration("REGISTRY_CACHE_TTL", 5*time.Minute),
		},
		ReminderCooldown: envDuration("REMINDER_COOLDOWN", 0),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	return strutil.DedupeAndTrim(strings.Split(v, ","))
}
