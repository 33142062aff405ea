package commands

import (
	"fmt"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/order-atlas/pkg/handlers/orders"
	"github.com/de-tools/order-atlas/pkg/server"
	"github.com/de-tools/order-atlas/pkg/services/analyzer"
	"github.com/de-tools/order-atlas/pkg/services/charts"
	"github.com/de-tools/order-atlas/pkg/services/config"
	"github.com/de-tools/order-atlas/pkg/services/email"
	"github.com/de-tools/order-atlas/pkg/services/report"
	s3store "github.com/de-tools/order-atlas/pkg/store/s3"
)

type ServeCmd struct {
	addr        string
	profileName string
	configPath  string
}

// NewServeCmd runs the same handler the deployed function uses behind the
// Lambda runtime emulator endpoint, so notification payloads can be replayed
// locally with curl.
func NewServeCmd() *cobra.Command {
	sc := &ServeCmd{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the order analysis handler on a local invocation endpoint",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.addr, "addr", ":8080", "Address to listen on")
	cmd.Flags().StringVar(&sc.profileName, "profile", config.DefaultProfile, "Configuration profile to use")
	cmd.Flags().StringVar(&sc.configPath, "config", "", "Path to the profiles file (environment variables are used when omitted)")

	return cmd
}

func (sc *ServeCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := resolveConfig(ctx, sc.configPath, sc.profileName)
	if err != nil {
		return err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	client := awss3.NewFromConfig(awsCfg)

	composer, err := report.NewComposer()
	if err != nil {
		return fmt.Errorf("failed to load report templates: %w", err)
	}

	sender, err := email.NewResendSender(cfg.ResendAPIKey, cfg.SenderEmail)
	if err != nil {
		return fmt.Errorf("failed to configure email delivery: %w", err)
	}

	service := analyzer.NewService(
		charts.NewRenderer(s3store.NewChartPublisher(client, cfg.ChartsBucket)),
		composer,
	)
	handler := orders.NewHandler(s3store.NewStore(client), service, sender)

	logger.Info().
		Str("addr", sc.addr).
		Str("charts_bucket", cfg.ChartsBucket).
		Msg("serving lambda invocations locally")

	api := server.NewWebAPI(server.Config{
		Addr:            sc.addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Handler: handler,
			Logger:  logger,
		},
	})

	return api.Start()
}
