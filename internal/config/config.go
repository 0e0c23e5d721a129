package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	AI      AIConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	JWTSecret      string
	AllowedOrigins []string
}

type StorageConfig struct {
	// Path of the SQLite file holding the persisted document
	Path string
}

type AIConfig struct {
	// GeminiAPIKey overrides the key stored in the document settings
	GeminiAPIKey string
}

type LogConfig struct {
	Level string
}

var AppConfig *Config

// LoadConfig reads .env (when present) and the process environment into the
// typed config. Environment variables always win over the file.
func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("DATA_PATH", "sobanhang.db")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")

	AppConfig = &Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			Env:            viper.GetString("SERVER_ENV"),
			JWTSecret:      viper.GetString("JWT_SECRET"),
			AllowedOrigins: viper.GetStringSlice("ALLOWED_ORIGINS"),
		},
		Storage: StorageConfig{
			Path: viper.GetString("DATA_PATH"),
		},
		AI: AIConfig{
			GeminiAPIKey: viper.GetString("GEMINI_API_KEY"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}
}
