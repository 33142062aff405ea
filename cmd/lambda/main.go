package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/de-tools/order-atlas/pkg/handlers/orders"
	"github.com/de-tools/order-atlas/pkg/models/api"
	"github.com/de-tools/order-atlas/pkg/services/analyzer"
	"github.com/de-tools/order-atlas/pkg/services/charts"
	"github.com/de-tools/order-atlas/pkg/services/config"
	"github.com/de-tools/order-atlas/pkg/services/email"
	"github.com/de-tools/order-atlas/pkg/services/report"
	s3store "github.com/de-tools/order-atlas/pkg/store/s3"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	handler, err := buildHandler(context.Background())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build handler")
	}

	lambda.Start(func(ctx context.Context, event events.S3Event) (api.Response, error) {
		return handler.HandleS3Event(logger.WithContext(ctx), event)
	})
}

func buildHandler(ctx context.Context) (*orders.Handler, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	client := awss3.NewFromConfig(awsCfg)

	composer, err := report.NewComposer()
	if err != nil {
		return nil, fmt.Errorf("failed to load report templates: %w", err)
	}

	sender, err := email.NewResendSender(cfg.ResendAPIKey, cfg.SenderEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to configure email delivery: %w", err)
	}

	service := analyzer.NewService(
		charts.NewRenderer(s3store.NewChartPublisher(client, cfg.ChartsBucket)),
		composer,
	)

	return orders.NewHandler(s3store.NewStore(client), service, sender), nil
}
