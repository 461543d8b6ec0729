package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Lead store configuration. StoreBackend selects which implementation
	// backs the join-request collection: "firestore" or "mongo".
	StoreBackend            string `mapstructure:"STORE_BACKEND"`
	DatabaseURL             string `mapstructure:"DATABASE_URL"`
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	// reCAPTCHA configuration.
	RecaptchaSecret        string  `mapstructure:"RECAPTCHA_SECRET"`
	RecaptchaSiteverifyURL string  `mapstructure:"RECAPTCHA_SITEVERIFY_URL"`
	RecaptchaMinScore      float64 `mapstructure:"RECAPTCHA_MIN_SCORE"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisLockDB   int    `mapstructure:"REDIS_LOCK_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Back-office API.
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`

	// Bounded timeouts (seconds) for the two async waits in the
	// submission pipeline.
	CaptchaTimeoutSec    int `mapstructure:"CAPTCHA_TIMEOUT_SEC"`
	StoreTimeoutSec      int `mapstructure:"STORE_TIMEOUT_SEC"`
	SubmissionLockTTLSec int `mapstructure:"SUBMISSION_LOCK_TTL_SEC"`
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
	viper.SetDefault("STORE_BACKEND", "firestore")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("RECAPTCHA_SITEVERIFY_URL", "https://www.google.com/recaptcha/api/siteverify")
	viper.SetDefault("RECAPTCHA_MIN_SCORE", 0.5)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_LOCK_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("CAPTCHA_TIMEOUT_SEC", 10)
	viper.SetDefault("STORE_TIMEOUT_SEC", 15)
	viper.SetDefault("SUBMISSION_LOCK_TTL_SEC", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// Validate checks the required-field set up front so a misconfigured
// environment fails at startup instead of on the first submission.
func Validate() error {
	if AppConfig.RecaptchaSecret == "" {
		return fmt.Errorf("RECAPTCHA_SECRET is required")
	}
	if AppConfig.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if AppConfig.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	switch AppConfig.StoreBackend {
	case "firestore":
		if AppConfig.FirebaseProjectID == "" && AppConfig.FirebaseCredentialsFile == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID or FIREBASE_CREDENTIALS_FILE is required for the firestore backend")
		}
	case "mongo":
		if AppConfig.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the mongo backend")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q (expected firestore or mongo)", AppConfig.StoreBackend)
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
