package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/taximeter/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "taximeter")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	// NSQ config
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "")
	configs.NSQ.LookupdAddress = GetEnvAsSlice("NSQ_LOOKUPD_ADDRESS", nil)

	// Pricing config
	configs.Pricing.URL = GetEnv("PRICING_URL", "")
	configs.Pricing.Timeout = GetEnvAsDuration("PRICING_TIMEOUT", 5*time.Second)
	configs.Pricing.MaxRetries = GetEnvAsInt("PRICING_MAX_RETRIES", 2)
	configs.Pricing.FallbackPricePerKm = GetEnvAsFloat("PRICING_FALLBACK_PRICE_PER_KM", 0.1)
	configs.Pricing.FallbackPricePerSecond = GetEnvAsFloat("PRICING_FALLBACK_PRICE_PER_SECOND", 0.027)

	// Location source config
	configs.Location.Source = GetEnv("LOCATION_SOURCE", models.LocationSourceSimulated)
	configs.Location.Interval = GetEnvAsDuration("LOCATION_INTERVAL", time.Second)
	configs.Location.Points = GetEnvAsInt("LOCATION_POINTS", 100)
	configs.Location.StartLatitude = GetEnvAsFloat("LOCATION_START_LATITUDE", 37.7749)
	configs.Location.StartLongitude = GetEnvAsFloat("LOCATION_START_LONGITUDE", -122.4194)
	configs.Location.Step = GetEnvAsFloat("LOCATION_STEP", 0.0001)
	configs.Location.Jitter = GetEnvAsFloat("LOCATION_JITTER", 0.00005)
	configs.Location.Subject = GetEnv("LOCATION_SUBJECT", "location.update")
	configs.Location.Topic = GetEnv("LOCATION_TOPIC", "location_update")
	configs.Location.Channel = GetEnv("LOCATION_CHANNEL", "taximeter")
	configs.Location.BufferSize = GetEnvAsInt("LOCATION_BUFFER_SIZE", 64)

	// Ride config
	configs.Ride.RefreshInterval = GetEnvAsDuration("RIDE_REFRESH_INTERVAL", time.Second)
	configs.Ride.GeohashPrecision = uint(GetEnvAsInt("RIDE_GEOHASH_PRECISION", 7))

	// Feed config
	configs.Feed.NATSEnabled = GetEnvAsBool("FEED_NATS_ENABLED", false)
	configs.Feed.NATSSubject = GetEnv("FEED_NATS_SUBJECT", "ride.updated")
	configs.Feed.RedisEnabled = GetEnvAsBool("FEED_REDIS_ENABLED", false)
	configs.Feed.RedisKey = GetEnv("FEED_REDIS_KEY", "taximeter:ride:current")
	configs.Feed.RedisTTL = GetEnvAsDuration("FEED_REDIS_TTL", 24*time.Hour)

	// Supplements config
	configs.Supplements.CatalogPath = GetEnv("SUPPLEMENTS_CATALOG_PATH", "")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.LogsEnabled = GetEnvAsBool("NEW_RELIC_LOGS_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration accepts Go duration strings ("1s", "250ms")
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil || value <= 0 {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsSlice splits a comma separated value, dropping empty entries
func GetEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
