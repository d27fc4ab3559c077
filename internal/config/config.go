package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const minSecretLen = 32

// OAuthProviderConfig holds one ad platform's OAuth app credentials.
type OAuthProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

type Config struct {
	Env                  string
	ServerPort           int
	DatabaseURL          string
	JWTSecret            string
	JWTRefreshSecret     string
	JWTExpiresIn         time.Duration
	JWTRefreshExpiresIn  time.Duration
	AdminDefaultPassword string
	BcryptCost           int
	GlobalRateLimit      int
	UserRateLimit        int
	Facebook             OAuthProviderConfig
	Google               OAuthProviderConfig
	KiwifyWebhookSecret  string
	HotmartWebhookSecret string
}

// Load reads and validates the environment. Every problem is collected so
// a misconfigured deployment reports all missing variables at once; the
// caller is expected to treat an error as fatal.
func Load() (*Config, error) {
	var problems []string

	require := func(key string) string {
		v := os.Getenv(key)
		if v == "" {
			problems = append(problems, key+": required")
		}
		return v
	}
	requireSecret := func(key string) string {
		v := require(key)
		if v != "" && len(v) < minSecretLen {
			problems = append(problems, fmt.Sprintf("%s: must be at least %d characters", key, minSecretLen))
		}
		return v
	}

	cfg := &Config{
		Env:                  getEnvWithDefault("APP_ENV", "development"),
		ServerPort:           getEnvIntWithDefault("SERVER_PORT", 3000),
		DatabaseURL:          require("DATABASE_URL"),
		JWTSecret:            requireSecret("JWT_SECRET"),
		JWTRefreshSecret:     requireSecret("JWT_REFRESH_SECRET"),
		AdminDefaultPassword: require("ADMIN_DEFAULT_PASSWORD"),
		BcryptCost:           getEnvIntWithDefault("BCRYPT_COST", 10),
		GlobalRateLimit:      getEnvIntWithDefault("GLOBAL_RATE_LIMIT", 10000),
		UserRateLimit:        getEnvIntWithDefault("USER_RATE_LIMIT", 1000),
		Facebook: OAuthProviderConfig{
			ClientID:     require("FACEBOOK_CLIENT_ID"),
			ClientSecret: require("FACEBOOK_CLIENT_SECRET"),
			RedirectURI:  require("FACEBOOK_REDIRECT_URI"),
		},
		Google: OAuthProviderConfig{
			ClientID:     require("GOOGLE_ADS_CLIENT_ID"),
			ClientSecret: require("GOOGLE_ADS_CLIENT_SECRET"),
			RedirectURI:  require("GOOGLE_ADS_REDIRECT_URI"),
		},
		KiwifyWebhookSecret:  require("KIWIFY_WEBHOOK_SECRET"),
		HotmartWebhookSecret: require("HOTMART_WEBHOOK_SECRET"),
	}

	var err error
	if cfg.JWTExpiresIn, err = parseExpiry(getEnvWithDefault("JWT_EXPIRES_IN", "15m")); err != nil {
		problems = append(problems, "JWT_EXPIRES_IN: "+err.Error())
	}
	if cfg.JWTRefreshExpiresIn, err = parseExpiry(getEnvWithDefault("JWT_REFRESH_EXPIRES_IN", "7d")); err != nil {
		problems = append(problems, "JWT_REFRESH_EXPIRES_IN: "+err.Error())
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid environment configuration: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}

// parseExpiry extends time.ParseDuration with a day suffix ("7d").
func parseExpiry(s string) (time.Duration, error) {
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
