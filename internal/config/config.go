package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppName       = "RewixPortal"
	defaultAppEnv        = "development"
	defaultPort          = "8080"
	defaultLogLevel      = "info"
	defaultShutdownDelay = 10 * time.Second
	defaultIdempotency   = 24 * time.Hour
	defaultOTPTTL        = 10 * time.Minute
	defaultOTPFrom       = "RewixCash <noreply@rewixcash.com>"
	defaultSessionTTL    = 7 * 24 * time.Hour
	defaultAdDuration    = 30 * time.Second
	defaultAdViewTTL     = 10 * time.Minute
	defaultMinRedeem     = 100
	defaultPointsPerAd   = 1
	defaultOTPSendLimit  = 5
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName         string
	AppEnv          string
	Port            string
	LogLevel        string
	DatabaseURL     string
	RedisURL        string
	ResendAPIKey    string
	OTPFromAddress  string
	OTPTTL          time.Duration
	OTPSendLimit    int
	AdminAccessCode string
	SessionTTL      time.Duration
	AdDuration      time.Duration
	AdViewTTL       time.Duration
	MinRedeemPoints int64
	PointsPerAd     int64
	ShutdownPeriod  time.Duration
	IdempotencyTTL  time.Duration
}

// Load reads configuration values from the environment (and an optional .env
// file) and populates a Config instance.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppName:         getEnv("APP_NAME", defaultAppName),
		AppEnv:          getEnv("APP_ENV", defaultAppEnv),
		Port:            getEnv("PORT", defaultPort),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		OTPFromAddress:  getEnv("OTP_FROM_ADDRESS", defaultOTPFrom),
		OTPTTL:          defaultOTPTTL,
		OTPSendLimit:    defaultOTPSendLimit,
		AdminAccessCode: os.Getenv("ADMIN_ACCESS_CODE"),
		SessionTTL:      defaultSessionTTL,
		AdDuration:      defaultAdDuration,
		AdViewTTL:       defaultAdViewTTL,
		MinRedeemPoints: defaultMinRedeem,
		PointsPerAd:     defaultPointsPerAd,
		ShutdownPeriod:  defaultShutdownDelay,
		IdempotencyTTL:  defaultIdempotency,
	}

	var err error
	if cfg.OTPTTL, err = durationEnv("OTP_TTL", cfg.OTPTTL); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", cfg.SessionTTL); err != nil {
		return Config{}, err
	}
	if cfg.AdDuration, err = durationEnv("AD_DURATION", cfg.AdDuration); err != nil {
		return Config{}, err
	}
	if cfg.AdViewTTL, err = durationEnv("AD_VIEW_TTL", cfg.AdViewTTL); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownPeriod, err = durationEnv("SHUTDOWN_TIMEOUT", cfg.ShutdownPeriod); err != nil {
		return Config{}, err
	}
	if cfg.IdempotencyTTL, err = durationEnv("IDEMPOTENCY_TTL", cfg.IdempotencyTTL); err != nil {
		return Config{}, err
	}
	if cfg.MinRedeemPoints, err = intEnv("MIN_REDEEM_POINTS", cfg.MinRedeemPoints); err != nil {
		return Config{}, err
	}
	if cfg.PointsPerAd, err = intEnv("POINTS_PER_AD", cfg.PointsPerAd); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("OTP_SEND_LIMIT"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			return Config{}, fmt.Errorf("invalid OTP_SEND_LIMIT: %w", convErr)
		}
		cfg.OTPSendLimit = n
	}

	if !cfg.IsDev() {
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL must be set when APP_ENV=%s", cfg.AppEnv)
		}
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("REDIS_URL must be set when APP_ENV=%s", cfg.AppEnv)
		}
		if cfg.ResendAPIKey == "" {
			return Config{}, fmt.Errorf("RESEND_API_KEY must be set when APP_ENV=%s", cfg.AppEnv)
		}
		if cfg.AdminAccessCode == "" {
			return Config{}, fmt.Errorf("ADMIN_ACCESS_CODE must be set when APP_ENV=%s", cfg.AppEnv)
		}
	}

	return cfg, nil
}

// IsDev reports whether the configured environment is a development one.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// durationEnv reads KEY as a Go duration string, or KEY_SECONDS as an integer
// number of seconds. The duration form wins when both are set.
func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return d, nil
	}
	if v := os.Getenv(key + "_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s_SECONDS: %w", key, err)
		}
		return time.Duration(seconds) * time.Second, nil
	}
	return fallback, nil
}

func intEnv(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
