package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store reads order payloads from S3 buckets.
type Store struct {
	client *s3.Client
}

func NewStore(client *s3.Client) *Store {
	return &Store{client: client}
}

// Fetch returns the raw bytes of one object.
func (s *Store) Fetch(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: awssdk.String(bucket),
		Key:    awssdk.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", bucket, key, err)
	}
	return data, nil
}

// ChartPublisher writes chart PNGs into the configured bucket and hands back
// their public URL.
type ChartPublisher struct {
	client *s3.Client
	bucket string
}

func NewChartPublisher(client *s3.Client, bucket string) *ChartPublisher {
	return &ChartPublisher{client: client, bucket: bucket}
}

func (p *ChartPublisher) Publish(ctx context.Context, key string, png []byte) (string, error) {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      awssdk.String(p.bucket),
		Key:         awssdk.String(key),
		Body:        bytes.NewReader(png),
		ContentType: awssdk.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", p.bucket, key, err)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", p.bucket, key), nil
}
