package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisPrefsDB   int    `mapstructure:"REDIS_PREFS_DB"`

	// Booking session lifetime in minutes.
	SessionTTLMin int `mapstructure:"SESSION_TTL_MIN"`

	// Automation simulator inter-step delay.
	AutomationStepDelayMS int `mapstructure:"AUTOMATION_STEP_DELAY_MS"`

	// Clinic management webhook (best-effort, may be empty).
	WebhookURL       string `mapstructure:"WEBHOOK_URL"`
	WebhookTimeoutMS int    `mapstructure:"WEBHOOK_TIMEOUT_MS"`

	// Theme returned when a client has no stored preference.
	DefaultTheme string `mapstructure:"DEFAULT_THEME"`
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
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_PREFS_DB", 1)
	viper.SetDefault("SESSION_TTL_MIN", 30)
	viper.SetDefault("AUTOMATION_STEP_DELAY_MS", 600)
	viper.SetDefault("WEBHOOK_URL", "")
	viper.SetDefault("WEBHOOK_TIMEOUT_MS", 3000)
	viper.SetDefault("DEFAULT_THEME", "light")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
