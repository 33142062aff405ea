package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// DefaultChartsBucket is where published chart images land unless the
// environment says otherwise.
const DefaultChartsBucket = "order-atlas-orders"

// Config holds everything the analyzer needs beyond the ambient AWS setup.
type Config struct {
	ChartsBucket string `mapstructure:"charts_bucket_name"`
	ResendAPIKey string `mapstructure:"resend_api_key"`
	SenderEmail  string `mapstructure:"sender_email"`
}

// FromEnv reads CHARTS_BUCKET_NAME, RESEND_API_KEY and SENDER_EMAIL from the
// process environment. Only the bucket has a default; the email credentials
// are validated where the sender is constructed.
func FromEnv() (*Config, error) {
	v := viper.New()
	v.SetDefault("charts_bucket_name", DefaultChartsBucket)
	for _, key := range []string{"charts_bucket_name", "resend_api_key", "sender_email"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	return &cfg, nil
}
