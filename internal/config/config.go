package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// 旅程データの取得元
const (
	SourceStatic        = "static"
	SourcePostgres      = "postgres"
	SourceSupabase      = "supabase"
	SourceFirestore     = "firestore"
	SourceElasticsearch = "elasticsearch"
)

type Config struct {
	App       AppConfig
	Yelp      YelpConfig
	Data      DataConfig
	Firestore FirestoreConfig
	Search    SearchConfig
	View      ViewConfig
}

type AppConfig struct {
	Port        string
	Environment string
	LogFilePath string
	StaticDir   string
}

type YelpConfig struct {
	APIKey   string
	BaseURL  string
	CacheTTL time.Duration
	Timeout  time.Duration
}

type DataConfig struct {
	TripSource       string
	RestaurantSource string
	DatabaseURL      string
	SupabaseURL      string
	SupabaseAnonKey  string
}

type FirestoreConfig struct {
	ProjectID string
}

type SearchConfig struct {
	ElasticsearchURL string
	Index            string
}

type ViewConfig struct {
	TripMarkerOpensLocal bool
	ResizeDelay          time.Duration
	GeolocationTimeout   time.Duration
}

// Load .env と環境変数から設定を読み込む
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	return &Config{
		App: AppConfig{
			Port:        getEnv("PORT", "8080"),
			Environment: getEnv("GO_ENV", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", ""),
			StaticDir:   getEnv("STATIC_DIR", "./public"),
		},
		Yelp: YelpConfig{
			APIKey:   getEnv("YELP_API_KEY", ""),
			BaseURL:  getEnv("YELP_BASE_URL", ""),
			CacheTTL: time.Duration(getEnvAsInt("YELP_CACHE_TTL_SECONDS", 300)) * time.Second,
			Timeout:  time.Duration(getEnvAsInt("YELP_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Data: DataConfig{
			TripSource:       strings.ToLower(getEnv("TRIP_SOURCE", SourceStatic)),
			RestaurantSource: strings.ToLower(getEnv("RESTAURANT_SOURCE", SourceStatic)),
			DatabaseURL:      getEnv("DATABASE_URL", ""),
			SupabaseURL:      getEnv("SUPABASE_URL", ""),
			SupabaseAnonKey:  getEnv("SUPABASE_ANON_KEY", ""),
		},
		Firestore: FirestoreConfig{
			ProjectID: getEnv("FIRESTORE_PROJECT_ID", ""),
		},
		Search: SearchConfig{
			ElasticsearchURL: getEnv("ELASTICSEARCH_URL", ""),
			Index:            getEnv("ELASTICSEARCH_INDEX", "restaurants"),
		},
		View: ViewConfig{
			TripMarkerOpensLocal: getEnvAsBool("TRIP_MARKER_OPENS_LOCAL", false),
			ResizeDelay:          time.Duration(getEnvAsInt("RESIZE_DELAY_MS", 100)) * time.Millisecond,
			GeolocationTimeout:   time.Duration(getEnvAsInt("GEOLOCATION_TIMEOUT_SECONDS", 10)) * time.Second,
		},
	}
}

// IsProduction 本番環境かどうか
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
