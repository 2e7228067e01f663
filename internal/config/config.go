package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// SpiceChatConfig holds the entity source API configuration
type SpiceChatConfig struct {
	APIURL          string        `mapstructure:"api_url"`
	CredentialsFile string        `mapstructure:"credentials_file"`
	BearerToken     string        `mapstructure:"bearer_token"`
	GuestUserID     string        `mapstructure:"guest_userid"`
	HTTPTimeout     time.Duration `mapstructure:"http_timeout"`
}

// TypesenseConfig holds the search backend configuration
type TypesenseConfig struct {
	URL        string `mapstructure:"url"`
	APIKey     string `mapstructure:"api_key"`
	Collection string `mapstructure:"collection"`
	BaseFilter string `mapstructure:"base_filter"`
	PerPage    int    `mapstructure:"per_page"`
	MaxPages   int    `mapstructure:"max_pages"`
	ChunkSize  int    `mapstructure:"chunk_size"`
	MaxWorkers int    `mapstructure:"max_workers"`
}

// RetryConfig bounds the backoff applied to external calls
type RetryConfig struct {
	InitialInterval time.Duration `mapstructure:"initial_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
	MaxElapsedTime  time.Duration `mapstructure:"max_elapsed_time"`
}

// RateLimitConfig bounds requests to a single upstream provider
type RateLimitConfig struct {
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimiterConfig holds the rate limiting proxy configuration
type RateLimiterConfig struct {
	MaxWorkers   int                        `mapstructure:"max_workers"`
	MaxQueueSize int                        `mapstructure:"max_queue_size"`
	Providers    map[string]RateLimitConfig `mapstructure:"providers"`
}

// RankConfig holds tier band thresholds
type RankConfig struct {
	FirstTierSize  int `mapstructure:"first_tier_size"`
	SecondTierSize int `mapstructure:"second_tier_size"`
}

// PollerConfig holds the polling loop configuration
type PollerConfig struct {
	Interval   time.Duration `mapstructure:"interval"`
	RunOnStart bool          `mapstructure:"run_on_start"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// PollerServiceConfig holds configuration for the poller binary
type PollerServiceConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Database    DatabaseConfig    `mapstructure:"database"`
	NATS        NATSConfig        `mapstructure:"nats"`
	SpiceChat   SpiceChatConfig   `mapstructure:"spicechat"`
	Typesense   TypesenseConfig   `mapstructure:"typesense"`
	Retry       RetryConfig       `mapstructure:"retry"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
	Rank        RankConfig        `mapstructure:"rank"`
	Poller      PollerConfig      `mapstructure:"poller"`
}

// APIServiceConfig holds configuration for the API binary
type APIServiceConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Database    DatabaseConfig    `mapstructure:"database"`
	NATS        NATSConfig        `mapstructure:"nats"`
	SpiceChat   SpiceChatConfig   `mapstructure:"spicechat"`
	Typesense   TypesenseConfig   `mapstructure:"typesense"`
	Retry       RetryConfig       `mapstructure:"retry"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
	Rank        RankConfig        `mapstructure:"rank"`
	Server      ServerConfig      `mapstructure:"server"`
	Auth        AuthConfig        `mapstructure:"auth"`
}

// LoadPollerConfig loads configuration for the poller binary
func LoadPollerConfig(configFile string, envPath string) (*PollerServiceConfig, error) {
	v := configureViper("poller", configFile, envPath)
	setCommonDefaults(v)
	v.SetDefault("poller.interval", "1h")
	v.SetDefault("poller.run_on_start", true)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config PollerServiceConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadAPIConfig loads configuration for the API binary
func LoadAPIConfig(configFile string, envPath string) (*APIServiceConfig, error) {
	v := configureViper("api", configFile, envPath)
	setCommonDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.idle_timeout", 120)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIServiceConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// setCommonDefaults sets defaults shared by both binaries
func setCommonDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "bottrack")
	v.SetDefault("spicechat.api_url", "https://prod.nd-api.com/v2")
	v.SetDefault("spicechat.http_timeout", "10s")
	v.SetDefault("typesense.collection", "public_characters_alias")
	v.SetDefault("typesense.per_page", 48)
	v.SetDefault("typesense.max_pages", 10)
	v.SetDefault("typesense.chunk_size", 80)
	v.SetDefault("typesense.max_workers", 4)
	v.SetDefault("retry.initial_interval", "2s")
	v.SetDefault("retry.max_interval", "30s")
	v.SetDefault("retry.max_elapsed_time", "1m")
	v.SetDefault("rate_limiter.max_workers", 16)
	v.SetDefault("rate_limiter.max_queue_size", 1000)
	v.SetDefault("rate_limiter.providers.spicechat.requests_per_second", 2)
	v.SetDefault("rate_limiter.providers.spicechat.burst", 2)
	v.SetDefault("rate_limiter.providers.typesense.requests_per_second", 8)
	v.SetDefault("rate_limiter.providers.typesense.burst", 8)
	v.SetDefault("rank.first_tier_size", 240)
	v.SetDefault("rank.second_tier_size", 480)
}

// readConfig reads the config file, tolerating its absence since every key can
// come from the environment
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/poller/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("BOTTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// SpiceChat
		"spicechat.api_url",
		"spicechat.credentials_file",
		"spicechat.bearer_token",
		"spicechat.guest_userid",
		"spicechat.http_timeout",
		// Typesense
		"typesense.url",
		"typesense.api_key",
		"typesense.collection",
		"typesense.base_filter",
		"typesense.per_page",
		"typesense.max_pages",
		"typesense.chunk_size",
		"typesense.max_workers",
		// Retry
		"retry.initial_interval",
		"retry.max_interval",
		"retry.max_elapsed_time",
		// Rate limiter
		"rate_limiter.max_workers",
		"rate_limiter.max_queue_size",
		// Rank
		"rank.first_tier_size",
		"rank.second_tier_size",
		// Poller
		"poller.interval",
		"poller.run_on_start",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
