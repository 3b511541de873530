// Package assets fetches branding assets through gocloud blob buckets, so
// the logo can live on local disk in development and in object storage in
// production without code changes.
package assets

import (
	"context"
	"log/slog"

	"mpeshop/internal/domain/service"
	"mpeshop/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

type bucketFetcher struct {
	bucketURL string
	logger    *slog.Logger
}

// NewBucketFetcher creates an AssetFetcher reading from the bucket at
// bucketURL (file://, mem://, s3://, gs://).
func NewBucketFetcher(bucketURL string, logger *slog.Logger) service.AssetFetcher {
	return &bucketFetcher{
		bucketURL: bucketURL,
		logger:    logger,
	}
}

func (f *bucketFetcher) Fetch(ctx context.Context, key string) ([]byte, error) {
	if f.bucketURL == "" || key == "" {
		return nil, errors.New("asset bucket is not configured")
	}

	bucket, err := blob.OpenBucket(ctx, f.bucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "open asset bucket")
	}
	defer func() {
		if closeErr := bucket.Close(); closeErr != nil {
			f.logger.WarnContext(ctx, "failed to close asset bucket", slog.Any("error", closeErr))
		}
	}()

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "read asset %q", key)
	}

	return data, nil
}
