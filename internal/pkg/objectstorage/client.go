package objectstorage

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/pkg/config"
	"dispatch/pkg/logger"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// NewClient подключается к S3 совместимому хранилищу и создает бакет, если его нет.
func NewClient(ctx context.Context, log logger.Logger, cfg *config.Storage) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	storageLog := log.With(
		logger.NewField("component", "object-storage"),
		logger.NewField("endpoint", cfg.Endpoint),
		logger.NewField("bucket", cfg.Bucket),
	)

	if err := ensureBucket(ctx, storageLog, client, cfg.Bucket); err != nil {
		return nil, fmt.Errorf("object storage: %w", err)
	}

	return client, nil
}

func ensureBucket(ctx context.Context, log logger.Logger, client *minio.Client, bucket string) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting object storage connection")

		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		return client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("object storage connection failed after retries")
		return fmt.Errorf("failed to prepare bucket %s: %w", bucket, err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("object storage connection established")
	return nil
}
