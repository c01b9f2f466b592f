package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"linkbio-service/internal/xerrors"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr       string
	DBConnString   string
	DBAnonKey      string
	RedisAddr      string
	RedisPass      string
	StorageBaseURL string
	SiteName       string
	SiteURL        string
	ResolveTimeout time.Duration
}

// Load reads configuration from the environment. The backend connection
// string and anonymous key are mandatory; malformed values fail closed with
// xerrors.ErrConfiguration so callers never mistake a broken deployment for
// a missing profile.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("LINKBIO: No .env file found, relying on system env vars")
	}

	cfg := Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8017"),
		DBConnString:   os.Getenv("DATABASE_URL"),
		DBAnonKey:      os.Getenv("DB_ANON_KEY"),
		RedisAddr:      getEnv("REDIS_ADDR", "redis:6379"),
		RedisPass:      getEnv("REDIS_PASS", ""),
		StorageBaseURL: getEnv("STORAGE_URL", ""),
		SiteName:       getEnv("SITE_NAME", "Terreta Hub"),
		SiteURL:        getEnv("SITE_URL", "https://terretahub.com"),
		ResolveTimeout: getEnvDuration("RESOLVE_TIMEOUT", 10*time.Second),
	}

	if cfg.DBConnString == "" {
		return Config{}, fmt.Errorf("%w: DATABASE_URL is required", xerrors.ErrConfiguration)
	}
	if err := validateAbsoluteURL(cfg.DBConnString); err != nil {
		return Config{}, fmt.Errorf("%w: DATABASE_URL: %v", xerrors.ErrConfiguration, err)
	}
	if cfg.DBAnonKey == "" {
		return Config{}, fmt.Errorf("%w: DB_ANON_KEY is required", xerrors.ErrConfiguration)
	}
	if cfg.StorageBaseURL != "" {
		if err := validateAbsoluteURL(cfg.StorageBaseURL); err != nil {
			return Config{}, fmt.Errorf("%w: STORAGE_URL: %v", xerrors.ErrConfiguration, err)
		}
	}

	return cfg, nil
}

func validateAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("not an absolute URL: %q", raw)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("LINKBIO: invalid %s=%q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}
