package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreDriverRest     = "rest"
	StoreDriverPostgres = "postgres"
)

var DefaultVerdicts = []string{
	"approved", "rejected", "pending",
	"agree", "disagree",
	"helpful", "not_helpful",
}

type Config struct {
	App struct {
		Name     string
		Env      string
		LogLevel string
	}
	Server struct {
		Port string
	}
	Supabase struct {
		URL        string
		Key        string // anon key, used for auth calls
		ServiceKey string // elevated key, preferred for table calls when present
		JWTSecret  string
	}
	Store struct {
		Driver string
		DSN    string
	}
	CORS struct {
		AllowedOrigins []string
		MaxAge         int
	}
	Feedback struct {
		Verdicts []string
	}
}

func Load() (*Config, error) {
	if envStack := os.Getenv("ENV_STACK"); envStack != "" {
		filePath := "./env-files/.env." + envStack
		if err := godotenv.Load(filePath); err != nil {
			fmt.Printf("Error loading %s file: %s\n", filePath, err)
		}
	}
	// godotenv never overrides variables that are already set.
	_ = godotenv.Load()

	c := &Config{}

	c.App.Name = getEnv("APP_NAME", "factcheck-api")
	c.App.Env = getEnv("APP_ENV", "development")
	c.App.LogLevel = getEnv("LOG_LEVEL", "info")

	c.Server.Port = getEnv("PORT", "8000")

	c.Supabase.URL = strings.TrimRight(os.Getenv("SUPABASE_URL"), "/")
	c.Supabase.Key = os.Getenv("SUPABASE_KEY")
	c.Supabase.ServiceKey = os.Getenv("SUPABASE_SERVICE_KEY")
	c.Supabase.JWTSecret = os.Getenv("SUPABASE_JWT_SECRET")

	c.Store.Driver = strings.ToLower(getEnv("STORE_DRIVER", StoreDriverRest))
	c.Store.DSN = os.Getenv("POSTGRES_URL")

	c.CORS.AllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"})
	c.CORS.MaxAge = getEnvAsInt("CORS_MAX_AGE", 86400)

	c.Feedback.Verdicts = getEnvAsList("FEEDBACK_VERDICTS", DefaultVerdicts)

	return c, c.Validate()
}

// Validate checks the auth provider settings, which every driver needs, and
// the settings each store driver depends on.
func (c *Config) Validate() error {
	if c.Supabase.URL == "" || c.Supabase.Key == "" {
		return errors.New("SUPABASE_URL and SUPABASE_KEY must be set")
	}

	switch c.Store.Driver {
	case StoreDriverRest:
	case StoreDriverPostgres:
		if c.Store.DSN == "" {
			return errors.New("POSTGRES_URL must be set when STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q, use %q or %q", c.Store.Driver, StoreDriverRest, StoreDriverPostgres)
	}

	if len(c.Feedback.Verdicts) == 0 {
		return errors.New("FEEDBACK_VERDICTS must not be empty")
	}
	return nil
}

// TableKey is the key sent with table operations.
func (c *Config) TableKey() string {
	if c.Supabase.ServiceKey != "" {
		return c.Supabase.ServiceKey
	}
	return c.Supabase.Key
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
