package models

import "time"

// Config represents application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Redis       RedisConfig
	NATS        NATSConfig
	NSQ         NSQConfig
	Pricing     PricingConfig
	Location    LocationConfig
	Ride        RideConfig
	Feed        FeedConfig
	Supplements SupplementsConfig
	Logger      LoggerConfig
	NewRelic    NewRelicConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ daemon configuration
type NSQConfig struct {
	Address        string
	LookupdAddress []string
}

// PricingConfig describes where the price configuration is fetched from
// and the rates used when it cannot be fetched.
type PricingConfig struct {
	URL                    string        `json:"url"`
	Timeout                time.Duration `json:"timeout"`
	MaxRetries             int           `json:"max_retries"`
	FallbackPricePerKm     float64       `json:"fallback_price_per_km"`
	FallbackPricePerSecond float64       `json:"fallback_price_per_second"`
}

// Location source kinds
const (
	LocationSourceSimulated = "simulated"
	LocationSourceNATS      = "nats"
	LocationSourceNSQ       = "nsq"
)

// LocationConfig selects and tunes the location source feeding the ride
type LocationConfig struct {
	Source         string        `json:"source"`
	Interval       time.Duration `json:"interval"`
	Points         int           `json:"points"`
	StartLatitude  float64       `json:"start_latitude"`
	StartLongitude float64       `json:"start_longitude"`
	Step           float64       `json:"step"`
	Jitter         float64       `json:"jitter"`
	Subject        string        `json:"subject"`
	Topic          string        `json:"topic"`
	Channel        string        `json:"channel"`
	BufferSize     int           `json:"buffer_size"`
}

// RideConfig contains ride update coordinator configuration
type RideConfig struct {
	RefreshInterval  time.Duration `json:"refresh_interval"`
	GeohashPrecision uint          `json:"geohash_precision"`
}

// FeedConfig controls where ride updates are mirrored
type FeedConfig struct {
	NATSEnabled  bool          `json:"nats_enabled"`
	NATSSubject  string        `json:"nats_subject"`
	RedisEnabled bool          `json:"redis_enabled"`
	RedisKey     string        `json:"redis_key"`
	RedisTTL     time.Duration `json:"redis_ttl"`
}

// SupplementsConfig points to the supplement catalog file
type SupplementsConfig struct {
	CatalogPath string `json:"catalog_path"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}
