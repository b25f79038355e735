package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRestEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("SUPABASE_URL", "https://project.supabase.co/")
	t.Setenv("SUPABASE_KEY", "anon-key")
	t.Setenv("SUPABASE_SERVICE_KEY", "")
	t.Setenv("FEEDBACK_VERDICTS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("CORS_MAX_AGE", "")
	t.Setenv("PORT", "")
}

func TestLoad_Defaults(t *testing.T) {
	setRestEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverRest, cfg.Store.Driver)
	assert.Equal(t, "https://project.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 86400, cfg.CORS.MaxAge)
	assert.Equal(t, DefaultVerdicts, cfg.Feedback.Verdicts)
	assert.Equal(t, "anon-key", cfg.TableKey())
}

func TestLoad_Overrides(t *testing.T) {
	setRestEnv(t)
	t.Setenv("SUPABASE_SERVICE_KEY", "service-key")
	t.Setenv("FEEDBACK_VERDICTS", " yes, no ,,maybe")
	t.Setenv("CORS_MAX_AGE", "600")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "service-key", cfg.TableKey())
	assert.Equal(t, []string{"yes", "no", "maybe"}, cfg.Feedback.Verdicts)
	assert.Equal(t, 600, cfg.CORS.MaxAge)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidMaxAgeFallsBack(t *testing.T) {
	setRestEnv(t)
	t.Setenv("CORS_MAX_AGE", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 86400, cfg.CORS.MaxAge)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"rest with credentials", func(c *Config) {}, false},
		{"rest without url", func(c *Config) { c.Supabase.URL = "" }, true},
		{"rest without key", func(c *Config) { c.Supabase.Key = "" }, true},
		{"postgres with dsn", func(c *Config) {
			c.Store.Driver = StoreDriverPostgres
			c.Store.DSN = "postgres://localhost/db"
		}, false},
		{"postgres without dsn", func(c *Config) { c.Store.Driver = StoreDriverPostgres }, true},
		{"postgres without auth url", func(c *Config) {
			c.Store.Driver = StoreDriverPostgres
			c.Store.DSN = "postgres://localhost/db"
			c.Supabase.URL = ""
		}, true},
		{"postgres without auth key", func(c *Config) {
			c.Store.Driver = StoreDriverPostgres
			c.Store.DSN = "postgres://localhost/db"
			c.Supabase.Key = ""
		}, true},
		{"unknown driver", func(c *Config) { c.Store.Driver = "mongo" }, true},
		{"no verdicts", func(c *Config) { c.Feedback.Verdicts = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			c.Store.Driver = StoreDriverRest
			c.Supabase.URL = "https://project.supabase.co"
			c.Supabase.Key = "anon"
			c.Feedback.Verdicts = DefaultVerdicts
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
