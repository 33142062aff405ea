package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/order-atlas/pkg/adapters"
	"github.com/de-tools/order-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/order-atlas/pkg/services/analyzer"
	"github.com/de-tools/order-atlas/pkg/services/charts"
	"github.com/de-tools/order-atlas/pkg/services/config"
	"github.com/de-tools/order-atlas/pkg/services/email"
	"github.com/de-tools/order-atlas/pkg/services/ingest"
	"github.com/de-tools/order-atlas/pkg/services/report"
	"github.com/de-tools/order-atlas/pkg/store/chartdir"
)

type AnalyzeCmd struct {
	inputPath   string
	outPath     string
	chartsDir   string
	recipient   string
	profileName string
	configPath  string
	reporter    *export.Reporter
}

func NewAnalyzeCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze an order history file and write the HTML report",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.inputPath, "input", "", "Path to the order history JSON file")
	cmd.Flags().StringVar(&ac.outPath, "out", "report.html", "Path for the HTML report")
	cmd.Flags().StringVar(&ac.chartsDir, "charts-dir", "charts", "Directory for rendered chart images")
	cmd.Flags().StringVar(&ac.recipient, "email", "", "Also deliver the report to this address")
	cmd.Flags().StringVar(&ac.profileName, "profile", config.DefaultProfile, "Configuration profile to use")
	cmd.Flags().StringVar(&ac.configPath, "config", "", "Path to the profiles file (environment variables are used when omitted)")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx, cancel := context.WithTimeout(logger.WithContext(cmd.Context()), 60*time.Second)
	defer cancel()

	payload, err := os.ReadFile(ac.inputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", ac.inputPath, err)
	}

	parsed, err := ingest.ParseOrders(payload)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", ac.inputPath, err)
	}

	publisher, err := chartdir.NewStore(ac.chartsDir)
	if err != nil {
		return fmt.Errorf("failed to prepare charts directory: %w", err)
	}

	composer, err := report.NewComposer()
	if err != nil {
		return fmt.Errorf("failed to load report templates: %w", err)
	}

	service := analyzer.NewService(charts.NewRenderer(publisher), composer)
	result, err := service.Analyze(ctx, adapters.MapOrdersToDomain(parsed))
	if err != nil {
		return err
	}

	if err := os.WriteFile(ac.outPath, []byte(result.HTML), 0o644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", ac.outPath, err)
	}

	if ac.recipient != "" {
		if err := ac.deliver(ctx, result.HTML, len(parsed)); err != nil {
			return err
		}
	}

	return ac.reporter.Handle(result)
}

func (ac *AnalyzeCmd) deliver(ctx context.Context, html string, orderCount int) error {
	cfg, err := resolveConfig(ctx, ac.configPath, ac.profileName)
	if err != nil {
		return err
	}

	sender, err := email.NewResendSender(cfg.ResendAPIKey, cfg.SenderEmail)
	if err != nil {
		return fmt.Errorf("failed to configure email delivery: %w", err)
	}

	return sender.Send(ctx, ac.recipient, report.Subject(orderCount), html)
}

// resolveConfig prefers a named profile when a profiles file is given and
// falls back to environment variables otherwise.
func resolveConfig(ctx context.Context, configPath, profile string) (*config.Config, error) {
	if configPath == "" {
		return config.FromEnv()
	}

	registry, err := config.NewRegistry(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles from %s: %w", configPath, err)
	}
	return registry.GetConfig(ctx, profile)
}
