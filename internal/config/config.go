package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Portal    PortalConfig
	Funding   FundingConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Secure    SecureConfig
}

type ServerConfig struct {
	Port string
}

type PortalConfig struct {
	// BaseURL is the prefix siteUrl is derived from; the project code is
	// appended as the final path segment.
	BaseURL string
}

type FundingConfig struct {
	DefaultCurrency string
}

type RateLimitConfig struct {
	// Rate per IP ("100-M" = 100/min). Empty disables.
	RatePerIP string
}

type CORSConfig struct {
	// AllowedOrigins is a comma-separated list; "*" allows all, empty disables CORS.
	AllowedOrigins []string
}

type SecureConfig struct {
	IsDevelopment bool
}

func Load() (*Config, error) {
	viper.AutomaticEnv()
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		viper.SetConfigFile(p)
		_ = viper.ReadInConfig()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "4000"),
		},
		Portal: PortalConfig{
			BaseURL: getEnvOrDefault("PORTAL_BASE_URL", "https://portal.ciet.example"),
		},
		Funding: FundingConfig{
			DefaultCurrency: getEnvOrDefault("DEFAULT_CURRENCY", "ETB"),
		},
		RateLimit: RateLimitConfig{
			RatePerIP: viper.GetString("RATE_PER_IP"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		},
		Secure: SecureConfig{
			IsDevelopment: viper.GetBool("SECURE_DEV"),
		},
	}
	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
