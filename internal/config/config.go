package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// Values are read from app.env in the config directory and overridden by environment variables.
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	AllowedOrigin   string        `mapstructure:"CORS_ALLOWED_ORIGIN"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`
	DBSource        string        `mapstructure:"DB_SOURCE"`
	UploadDir       string        `mapstructure:"UPLOAD_DIR"`
	POIConcurrent   bool          `mapstructure:"POI_CONCURRENT"`
	ProviderTimeout time.Duration `mapstructure:"PROVIDER_TIMEOUT"`

	OpenAIAPIKey      string `mapstructure:"OPEN_AI_API_KEY"`
	OpenAIBaseURL     string `mapstructure:"OPEN_AI_BASE_URL"`
	OpenAITextModel   string `mapstructure:"OPEN_AI_TEXT_MODEL"`
	OpenAIVisionModel string `mapstructure:"OPEN_AI_VISION_MODEL"`

	CloudflareAPIKey         string `mapstructure:"CLOUDFLARE_AI_API_KEY"`
	CloudflareAccount        string `mapstructure:"CLOUDFLARE_ACCOUNT"`
	CloudflareBaseURL        string `mapstructure:"CLOUDFLARE_BASE_URL"`
	CloudflareTextModel      string `mapstructure:"CLOUDFLARE_TEXT_MODEL"`
	CloudflareEmbeddingModel string `mapstructure:"CLOUDFLARE_EMBEDDING_MODEL"`

	// GoogleVisionAPIKey authenticates both Cloud Vision and the Geocoding API.
	GoogleVisionAPIKey   string `mapstructure:"GOOGLE_VISION_API_KEY"`
	GoogleVisionBaseURL  string `mapstructure:"GOOGLE_VISION_BASE_URL"`
	GoogleGeocodeBaseURL string `mapstructure:"GOOGLE_GEOCODE_BASE_URL"`

	GeminiAPIKey      string `mapstructure:"GOOGLE_PALM2_API_KEY"`
	GeminiBaseURL     string `mapstructure:"GEMINI_BASE_URL"`
	GeminiTextModel   string `mapstructure:"GEMINI_TEXT_MODEL"`
	GeminiVisionModel string `mapstructure:"GEMINI_VISION_MODEL"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":      "0.0.0.0:3001",
	"CORS_ALLOWED_ORIGIN": "*",
	"SHUTDOWN_TIMEOUT":    "30s",
	"LOG_LEVEL":           "debug",
	"LOG_FORMAT":          "console",
	"DB_SOURCE":           "",
	"UPLOAD_DIR":          "./target/cache/uploads",
	"POI_CONCURRENT":      true,
	"PROVIDER_TIMEOUT":    "60s",

	"OPEN_AI_API_KEY":      "",
	"OPEN_AI_BASE_URL":     "https://api.openai.com/v1",
	"OPEN_AI_TEXT_MODEL":   "gpt-4o",
	"OPEN_AI_VISION_MODEL": "gpt-4o",

	"CLOUDFLARE_AI_API_KEY":      "",
	"CLOUDFLARE_ACCOUNT":         "",
	"CLOUDFLARE_BASE_URL":        "https://api.cloudflare.com/client/v4",
	"CLOUDFLARE_TEXT_MODEL":      "meta/llama-2-7b-chat-int8",
	"CLOUDFLARE_EMBEDDING_MODEL": "baai/bge-base-en-v1.5",

	"GOOGLE_VISION_API_KEY":   "",
	"GOOGLE_VISION_BASE_URL":  "https://vision.googleapis.com/v1",
	"GOOGLE_GEOCODE_BASE_URL": "https://maps.googleapis.com/maps/api",

	"GOOGLE_PALM2_API_KEY": "",
	"GEMINI_BASE_URL":      "https://generativelanguage.googleapis.com/v1beta",
	"GEMINI_TEXT_MODEL":    "gemini-1.5-pro",
	"GEMINI_VISION_MODEL":  "gemini-1.5-pro",
}

// LoadConfig reads configuration from path/app.env, if present, and from the environment.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}
	return config, nil
}

// Validate checks that every provider credential is present.
func (c Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"OPEN_AI_API_KEY", c.OpenAIAPIKey},
		{"CLOUDFLARE_AI_API_KEY", c.CloudflareAPIKey},
		{"CLOUDFLARE_ACCOUNT", c.CloudflareAccount},
		{"GOOGLE_VISION_API_KEY", c.GoogleVisionAPIKey},
		{"GOOGLE_PALM2_API_KEY", c.GeminiAPIKey},
	}

	var errs []error
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s must be set", r.key))
		}
	}
	if c.ProviderTimeout <= 0 {
		errs = append(errs, fmt.Errorf("PROVIDER_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}
