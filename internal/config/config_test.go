package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDevelopmentDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_PASSWORD", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "admin@happybrotherac.com", cfg.Admin.Email)
	assert.Equal(t, []string{"Ahmed Hassan", "Sophia White", "Omar Farooq"}, cfg.Content.Authors)
	assert.NotEmpty(t, cfg.JWT.Secret)
	assert.NotEmpty(t, cfg.Admin.Password)
}

func TestLoadProductionFlagsMissingSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_PASSWORD", "")

	cfg, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingConfig)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD")

	// Config is still usable with its defaults applied.
	require.NotNil(t, cfg)
	assert.Equal(t, "production", cfg.App.Environment)
}

func TestLoadProductionWithSecretsSet(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("ADMIN_PASSWORD", "s3cure-pass")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "super-secret", cfg.JWT.Secret)
	assert.Equal(t, "s3cure-pass", cfg.Admin.Password)
}

func TestLoadCustomAuthorList(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("BLOG_AUTHORS", " Jane Doe , , John Smith ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe", "John Smith"}, cfg.Content.Authors)
}
