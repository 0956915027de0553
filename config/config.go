package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Catalog configuration. Backend is "file" or "mongo".
	CatalogBackend string `mapstructure:"CATALOG_BACKEND"`
	HotelDataPath  string `mapstructure:"HOTEL_DATA_PATH"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	DatabaseName   string `mapstructure:"DATABASE_NAME"`

	// Session store configuration. Backend is "memory" or "redis".
	SessionBackend    string `mapstructure:"SESSION_BACKEND"`
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB    int    `mapstructure:"REDIS_SESSION_DB"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`

	// Conversational model. Provider is "ollama" or "gemini".
	LLMProvider       string `mapstructure:"LLM_PROVIDER"`
	OllamaHost        string `mapstructure:"OLLAMA_HOST"`
	OllamaModel       string `mapstructure:"OLLAMA_MODEL"`
	GeminiAPIKey      string `mapstructure:"GEMINI_API_KEY"`
	LLMTimeoutSeconds int    `mapstructure:"LLM_TIMEOUT_SECONDS"`

	// Speech services.
	AudioDir                 string `mapstructure:"AUDIO_DIR"`
	TTSTimeoutSeconds        int    `mapstructure:"TTS_TIMEOUT_SECONDS"`
	GoogleServiceAccountFile string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_FILE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CATALOG_BACKEND", "file")
	viper.SetDefault("HOTEL_DATA_PATH", "./data/hotels.json")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "innkeeper")
	viper.SetDefault("SESSION_BACKEND", "memory")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("SESSION_TTL_MINUTES", 0)
	viper.SetDefault("LLM_PROVIDER", "ollama")
	viper.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	viper.SetDefault("OLLAMA_MODEL", "llama3.2")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("LLM_TIMEOUT_SECONDS", 60)
	viper.SetDefault("AUDIO_DIR", "./audio")
	viper.SetDefault("TTS_TIMEOUT_SECONDS", 15)
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_FILE", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// LLMTimeout returns the bounded timeout applied to conversational model calls.
func (c Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSeconds) * time.Second
}

// TTSTimeout returns the bounded timeout applied to speech rendering calls.
func (c Config) TTSTimeout() time.Duration {
	return time.Duration(c.TTSTimeoutSeconds) * time.Second
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
