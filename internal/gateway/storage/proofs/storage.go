package proofs

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"dispatch/internal/entities"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Storage складывает фото подтверждения доставки в бакет под ключом proofs/{order}/{uuid}.
// Возвращаемый URL постоянный: объекты не перезаписываются.
type Storage struct {
	client        objectPutter
	bucket        string
	publicBaseURL string
	newID         func() string
}

func New(client objectPutter, bucket, publicBaseURL string) *Storage {
	return &Storage{
		client:        client,
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
		newID:         uuid.NewString,
	}
}

func (s *Storage) UploadProof(ctx context.Context, orderID string, photo entities.ProofPhoto) (string, error) {
	if len(photo.Content) == 0 {
		return "", ErrEmptyPhoto
	}

	contentType := photo.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(photo.Content)
	}
	ext, ok := extensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, contentType)
	}

	key := fmt.Sprintf("proofs/%s/%s%s", orderID, s.newID(), ext)

	start := time.Now()
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(photo.Content), int64(len(photo.Content)), minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"order-id": orderID,
		},
	})
	UploadDuration.WithLabelValues(result(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}

	location, err := url.JoinPath(s.publicBaseURL, s.bucket, key)
	if err != nil {
		return "", fmt.Errorf("build public url for %s: %w", key, err)
	}
	return location, nil
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
