package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Settings holds the environment driven knobs shared by the services.
type Settings struct {
	Port            string
	SearchTopic     string
	AllowedOrigins  []string
	SeedDemoData    bool
	SearchSvcURL    string
	AnalyticsSvcURL string
	MLServiceURL    string

	YandexAPIKey     string
	YandexSearchURL  string
	ProviderTimeout  time.Duration
	ProviderResults  int
	ProviderCacheTTL time.Duration

	DefaultLat     float64
	DefaultLon     float64
	LocalThreshold int
	ResultLimit    int
}

// Load reads an optional .env file and then the process environment.
func Load(defaultPort string) Settings {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}

	return Settings{
		Port:            getEnv("PORT", defaultPort),
		SearchTopic:     getEnv("KAFKA_SEARCH_TOPIC", "search-events"),
		AllowedOrigins:  splitCSV(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8080")),
		SeedDemoData:    getEnvBool("SEED_DEMO_DATA", false),
		SearchSvcURL:    getEnv("SEARCH_SVC_URL", "http://localhost:8081"),
		AnalyticsSvcURL: getEnv("ANALYTICS_SVC_URL", "http://localhost:8083"),
		MLServiceURL:    getEnv("ML_SERVICE_URL", "http://localhost:8001"),

		YandexAPIKey:     os.Getenv("YANDEX_MAPS_API_KEY"),
		YandexSearchURL:  getEnv("YANDEX_SEARCH_URL", "https://search-maps.yandex.ru/v1/"),
		ProviderTimeout:  getEnvDuration("PROVIDER_TIMEOUT", 10*time.Second),
		ProviderResults:  getEnvInt("PROVIDER_RESULTS", 20),
		ProviderCacheTTL: getEnvDuration("PROVIDER_CACHE_TTL", 10*time.Minute),

		DefaultLat:     getEnvFloat("DEFAULT_LAT", 55.7558),
		DefaultLon:     getEnvFloat("DEFAULT_LON", 37.6173),
		LocalThreshold: getEnvInt("LOCAL_THRESHOLD", 8),
		ResultLimit:    getEnvInt("RESULT_LIMIT", 15),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		logrus.Warnf("invalid duration %s=%q, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return value
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
