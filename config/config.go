package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string
	}
	Database struct {
		DSN string // "memory" or a SQLite file path
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	Session struct {
		TTLMinutes int `mapstructure:"ttl_minutes"`
	}
	LLM struct {
		APIKeyEnv      string `mapstructure:"api_key_env"` // name of the env var holding the key
		APIKey         string `mapstructure:"api_key"`
		BaseURL        string `mapstructure:"base_url"`
		Model          string `mapstructure:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"llm"`
	WhatsApp struct {
		BaseURL string `mapstructure:"base_url"`
		Token   string `mapstructure:"token"`
		Sender  string `mapstructure:"sender"`
	} `mapstructure:"whatsapp"`
	Zoom struct {
		BaseURL string `mapstructure:"base_url"`
		Token   string `mapstructure:"token"`
	} `mapstructure:"zoom"`
}

// AppConfig is the global configuration instance.
var AppConfig Config

// SessionTTL returns the configured session lifetime.
func SessionTTL() time.Duration {
	return time.Duration(AppConfig.Session.TTLMinutes) * time.Minute
}

// AssistTimeout returns the timeout applied to AI assist calls.
func AssistTimeout() time.Duration {
	return time.Duration(AppConfig.LLM.TimeoutSeconds) * time.Second
}

// LoadConfig loads configuration from config.yaml and environment variables.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../config") // for running from locations like tests

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.dsn", "mindpulse.db")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("session.ttl_minutes", 120)
	viper.SetDefault("llm.api_key_env", "GEMINI_API_KEY")
	viper.SetDefault("llm.base_url", "https://generativelanguage.googleapis.com/v1beta/openai")
	viper.SetDefault("llm.model", "gemini-1.5-flash")
	viper.SetDefault("llm.timeout_seconds", 30)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("WARN: [Config] Configuration file (config.yaml) not found. Using environment variables and defaults.")
		} else {
			log.Fatalf("FATAL: [Config] Error reading configuration file: %v", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("FATAL: [Config] Failed to unmarshal configuration into AppConfig struct: %v", err)
	}

	// Environment variable overrides.
	if port := os.Getenv("SERVER_PORT"); port != "" {
		AppConfig.Server.Port = port
		log.Printf("INFO: [Config] Server port overridden by environment variable SERVER_PORT: %s", port)
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		AppConfig.Redis.Addr = addr
	}

	// The LLM API key is never stored in config.yaml; it is resolved from the
	// environment variable named by llm.api_key_env.
	if AppConfig.LLM.APIKeyEnv != "" {
		if key := os.Getenv(AppConfig.LLM.APIKeyEnv); key != "" {
			AppConfig.LLM.APIKey = key
			log.Printf("INFO: [Config] Loaded LLM API key from environment variable '%s'.", AppConfig.LLM.APIKeyEnv)
		} else if AppConfig.LLM.APIKey == "" {
			log.Printf("WARN: [Config] LLM API key (env var '%s') is not set. AI assist will be degraded.", AppConfig.LLM.APIKeyEnv)
		}
	}
	if token := os.Getenv("WHATSAPP_TOKEN"); token != "" {
		AppConfig.WhatsApp.Token = token
	}
	if token := os.Getenv("ZOOM_TOKEN"); token != "" {
		AppConfig.Zoom.Token = token
	}

	log.Println("INFO: [Config] Configuration loading complete.")
}
