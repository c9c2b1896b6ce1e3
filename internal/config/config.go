package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port      string
	Env       string
	LogLevel  string
	LogFormat string

	// Shared-secret key required on write endpoints. Empty disables the check.
	APIKey     string
	AppVersion string
	CORSOrigin string

	// Spreadsheet persistence
	SpreadsheetID         string
	LeadsSheetName        string
	SiteSheetName         string
	GoogleCredentialsJSON string

	// Rate limiting / dedup
	RedisAddr          string
	RedisPassword      string
	RedisTLS           bool
	MaxPerEmailPerMin  int
	MaxGlobalPerMin    int
	DuplicateWindow    time.Duration
	CounterWindow      time.Duration
	LockWaitTimeout    time.Duration
	MinFillTime        time.Duration
	MaxFormAge         time.Duration
	IPRatePerSecond    float64
	IPRateBurst        int
	DisableIPRateLimit bool

	// Notifications
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	NotifyEmail       string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "json")),

		APIKey:     getEnv("API_KEY", ""),
		AppVersion: getEnv("APP_VERSION", "v1"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),

		SpreadsheetID:         getEnv("SHEET_ID", ""),
		LeadsSheetName:        getEnv("LEADS_SHEET_NAME", "Website_Leads"),
		SiteSheetName:         getEnv("SITE_SHEET_NAME", "Site_Content"),
		GoogleCredentialsJSON: getEnv("GOOGLE_CREDENTIALS_JSON", ""),

		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisTLS:           getEnvAsBool("REDIS_TLS", false),
		MaxPerEmailPerMin:  getEnvAsInt("MAX_PER_EMAIL_PER_MIN", 3),
		MaxGlobalPerMin:    getEnvAsInt("MAX_GLOBAL_PER_MIN", 40),
		DuplicateWindow:    getEnvAsDuration("DUPLICATE_WINDOW", 120*time.Second),
		CounterWindow:      getEnvAsDuration("COUNTER_WINDOW", 60*time.Second),
		LockWaitTimeout:    getEnvAsDuration("LOCK_WAIT_TIMEOUT", 5*time.Second),
		MinFillTime:        getEnvAsDuration("MIN_FILL_TIME", 3*time.Second),
		MaxFormAge:         getEnvAsDuration("MAX_FORM_AGE", 2*time.Hour),
		IPRatePerSecond:    getEnvAsFloat("IP_RATE_PER_SECOND", 1),
		IPRateBurst:        getEnvAsInt("IP_RATE_BURST", 5),
		DisableIPRateLimit: getEnvAsBool("DISABLE_IP_RATE_LIMIT", false),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Regenplastics Website"),
		NotifyEmail:       getEnv("NOTIFY_EMAIL", ""),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
