package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("explicit values", func(t *testing.T) {
		t.Setenv("CHARTS_BUCKET_NAME", "my-charts")
		t.Setenv("RESEND_API_KEY", "re_test_key")
		t.Setenv("SENDER_EMAIL", "reports@example.com")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "my-charts", cfg.ChartsBucket)
		assert.Equal(t, "re_test_key", cfg.ResendAPIKey)
		assert.Equal(t, "reports@example.com", cfg.SenderEmail)
	})

	t.Run("bucket defaults when unset", func(t *testing.T) {
		t.Setenv("CHARTS_BUCKET_NAME", "")
		t.Setenv("RESEND_API_KEY", "re_test_key")
		t.Setenv("SENDER_EMAIL", "reports@example.com")
		os.Unsetenv("CHARTS_BUCKET_NAME")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, DefaultChartsBucket, cfg.ChartsBucket)
	})
}

func setupProfiles(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.ini")
	content := `[personal]
charts_bucket_name = personal-orders
resend_api_key     = re_personal
sender_email       = me@example.com

[work]
resend_api_key = re_work
sender_email   = team@example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRegistry_GetProfiles(t *testing.T) {
	registry, err := NewRegistry(setupProfiles(t))
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"personal", "work"}, profiles)
}

func TestRegistry_GetConfig(t *testing.T) {
	registry, err := NewRegistry(setupProfiles(t))
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("full profile", func(t *testing.T) {
		cfg, err := registry.GetConfig(ctx, "personal")
		require.NoError(t, err)
		assert.Equal(t, "personal-orders", cfg.ChartsBucket)
		assert.Equal(t, "re_personal", cfg.ResendAPIKey)
		assert.Equal(t, "me@example.com", cfg.SenderEmail)
	})

	t.Run("bucket falls back to default", func(t *testing.T) {
		cfg, err := registry.GetConfig(ctx, "work")
		require.NoError(t, err)
		assert.Equal(t, DefaultChartsBucket, cfg.ChartsBucket)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := registry.GetConfig(ctx, "missing")
		assert.Error(t, err)
	})
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)
}
