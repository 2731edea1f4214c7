//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=proofs_test
package proofs

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
)

type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}
