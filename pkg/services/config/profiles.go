package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// DefaultProfile is the section the CLI reads when no profile is named.
const DefaultProfile = "default"

// Registry resolves named analyzer profiles from an INI file so the CLI can
// switch accounts without re-exporting environment variables. A profile
// section looks like:
//
//	[personal]
//	charts_bucket_name = my-orders
//	resend_api_key     = re_...
//	sender_email       = reports@example.com
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetConfig(ctx context.Context, profile string) (*Config, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load profiles from %s: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetConfig(_ context.Context, profile string) (*Config, error) {
	if !cr.cfg.HasSection(profile) {
		return nil, fmt.Errorf("profile %s not found", profile)
	}
	section := cr.cfg.Section(profile)

	cfg := &Config{
		ChartsBucket: section.Key("charts_bucket_name").String(),
		ResendAPIKey: section.Key("resend_api_key").String(),
		SenderEmail:  section.Key("sender_email").String(),
	}
	if cfg.ChartsBucket == "" {
		cfg.ChartsBucket = DefaultChartsBucket
	}
	return cfg, nil
}
