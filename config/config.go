package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	// Triage pipeline
	Model ModelConfig
	Groq  GroqConfig

	// Collaborators
	Auth    AuthConfig
	Storage StorageConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ModelConfig describes the skin-lesion classifier artifact.
type ModelConfig struct {
	Path          string        // path to the .onnx artifact
	LibraryPath   string        // optional path to the onnxruntime shared library
	FailureWindow time.Duration // how long a failed load is cached before re-probing disk
}

type GroqConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type AuthConfig struct {
	Secret          string
	TokenExpiry     time.Duration
	RateLimitPerMin int
}

type StorageConfig struct {
	Path string // badger data directory
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// Best-effort .env for local development; viper reads the environment.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Classifier model artifact
	cfg.Model.Path = viper.GetString("model.path")
	cfg.Model.LibraryPath = viper.GetString("model.library_path")
	cfg.Model.FailureWindow = viper.GetDuration("model.failure_window")
	if modelPath := viper.GetString("model_path"); modelPath != "" {
		cfg.Model.Path = modelPath
	}

	// Groq — absence of the API key is a valid state: guidance degrades to
	// the static advisory instead of calling out.
	cfg.Groq.APIKey = viper.GetString("groq.api_key")
	cfg.Groq.Model = viper.GetString("groq.model")
	cfg.Groq.BaseURL = viper.GetString("groq.base_url")
	if groqKey := viper.GetString("groq_api_key"); groqKey != "" {
		cfg.Groq.APIKey = groqKey
	}

	// Auth
	cfg.Auth.Secret = viper.GetString("auth.secret")
	cfg.Auth.TokenExpiry = viper.GetDuration("auth.token_expiry")
	cfg.Auth.RateLimitPerMin = viper.GetInt("auth.rate_limit_per_min")
	if authSecret := viper.GetString("auth_secret"); authSecret != "" {
		cfg.Auth.Secret = authSecret
	}
	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("auth.secret is required - set AUTH_SECRET or auth.secret in config.yaml")
	}

	// Storage
	cfg.Storage.Path = viper.GetString("storage.path")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("model.path", "model/skin_model.onnx")
	viper.SetDefault("model.failure_window", "30s")

	viper.SetDefault("groq.model", "llama-3.1-8b-instant")

	viper.SetDefault("auth.token_expiry", "60m")
	viper.SetDefault("auth.rate_limit_per_min", 30)

	viper.SetDefault("storage.path", "data/arogyaai")
}
