package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	JWTExpiryHours    int    `mapstructure:"JWT_EXPIRY_HOURS"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	MaxUploadSizeMB   int64  `mapstructure:"MAX_UPLOAD_SIZE_MB"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`

	// EmailJS provider configuration.
	EmailJSBaseURL        string `mapstructure:"EMAILJS_BASE_URL"`
	EmailJSServiceID      string `mapstructure:"EMAILJS_SERVICE_ID"`
	EmailJSReminderTmplID string `mapstructure:"EMAILJS_REMINDER_TEMPLATE_ID"`
	EmailJSTodayTmplID    string `mapstructure:"EMAILJS_TODAY_TEMPLATE_ID"`
	EmailJSPublicKey      string `mapstructure:"EMAILJS_PUBLIC_KEY"`
	EmailJSPrivateKey     string `mapstructure:"EMAILJS_PRIVATE_KEY"`
	EmailPacingSeconds    int    `mapstructure:"EMAIL_PACING_SECONDS"`

	// Reminder scheduling.
	ReminderCronSpec string `mapstructure:"REMINDER_CRON_SPEC"`
	CronSecret       string `mapstructure:"CRON_SECRET"`
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
	viper.SetDefault("MAX_UPLOAD_SIZE_MB", 10)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "evermore")
	viper.SetDefault("JWT_EXPIRY_HOURS", 72)
	viper.SetDefault("EMAILJS_BASE_URL", "https://api.emailjs.com")
	viper.SetDefault("EMAIL_PACING_SECONDS", 1)
	// Daily at 08:00 local time.
	viper.SetDefault("REMINDER_CRON_SPEC", "0 8 * * *")

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
