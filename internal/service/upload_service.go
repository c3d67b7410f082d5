package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"camphq/platform/internal/config"
)

// PresignResult carries the one-shot PUT URL the client uploads to and the
// stable public URL it PATCHes onto the owning record afterwards.
type PresignResult struct {
	UploadURL string    `json:"upload_url"`
	PublicURL string    `json:"public_url"`
	ObjectKey string    `json:"object_key"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UploadService interface {
	Presign(ctx context.Context, filename string) (*PresignResult, error)
}

type uploadService struct {
	client     *minio.Client
	bucket     string
	publicBase string
	presignTTL time.Duration
	now        nowFunc
}

func NewUploadService(cfg config.StorageConfig) (UploadService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init object store client: %w", err)
	}

	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &uploadService{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicBase, "/"),
		presignTTL: ttl,
		now:        defaultNow,
	}, nil
}

func (s *uploadService) Presign(ctx context.Context, filename string) (*PresignResult, error) {
	key := objectKey(filename, s.now())

	uploadURL, err := s.client.PresignedPutObject(ctx, s.bucket, key, s.presignTTL)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	return &PresignResult{
		UploadURL: uploadURL.String(),
		PublicURL: s.publicBase + "/" + key,
		ObjectKey: key,
		ExpiresAt: s.now().Add(s.presignTTL),
	}, nil
}

// objectKey namespaces uploads by month and randomizes the name, keeping the
// original extension so content type sniffing keeps working downstream.
func objectKey(filename string, now time.Time) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("uploads/%s/%s%s", now.Format("2006/01"), uuid.NewString(), ext)
}
