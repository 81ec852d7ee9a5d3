package services

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/itsraghul/hearty-foods/apperrors"
	"github.com/itsraghul/hearty-foods/config"
	"go.uber.org/zap"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpeg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// PresignedUpload is a one-shot direct-to-S3 upload grant for a dish image.
type PresignedUpload struct {
	UploadURL string            `json:"upload_url"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers"`
	Key       string            `json:"key"`
	PublicURL string            `json:"public_url"`
	ExpiresIn int64             `json:"expires_in"`
}

// UploadService hands out presigned S3 PUT URLs so dish images never pass
// through this server. Disabled unless an S3 bucket is configured.
type UploadService struct {
	presigner     *s3.PresignClient
	bucket        string
	publicBaseURL string
	expiry        time.Duration
	logger        *zap.Logger
}

// NewUploadService creates the upload service, or a disabled instance when no
// bucket is configured.
func NewUploadService(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*UploadService, error) {
	if cfg.S3Bucket == "" {
		return &UploadService{logger: logger}, nil
	}

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.S3Region),
	}
	if ak, sk := awsStaticCredentials(); ak != "" || sk != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(ak, sk, ""),
		))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	publicBase := cfg.S3PublicBaseURL
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &UploadService{
		presigner:     s3.NewPresignClient(client),
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimRight(publicBase, "/"),
		expiry:        15 * time.Minute,
		logger:        logger,
	}, nil
}

// Enabled reports whether uploads are configured.
func (s *UploadService) Enabled() bool {
	return s.presigner != nil
}

// PresignDishImage returns a presigned PUT URL for a dish image upload.
func (s *UploadService) PresignDishImage(ctx context.Context, contentType string) (*PresignedUpload, error) {
	if !s.Enabled() {
		return nil, apperrors.New(503, "Image uploads are not configured", nil)
	}

	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, apperrors.Validation("Content type must be one of image/jpeg, image/png, image/webp")
	}

	key := path.Join("dishes", uuid.NewString()+ext)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigned, err := s.presigner.PresignPutObject(ctx, input, func(o *s3.PresignOptions) {
		o.Expires = s.expiry
	})
	if err != nil {
		s.logger.Error("failed to presign upload", zap.Error(err))
		return nil, apperrors.Upstream("Failed to generate upload URL", err)
	}

	headers := make(map[string]string)
	for k, v := range presigned.SignedHeader {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return &PresignedUpload{
		UploadURL: presigned.URL,
		Method:    "PUT",
		Headers:   headers,
		Key:       key,
		PublicURL: s.publicBaseURL + "/" + key,
		ExpiresIn: int64(s.expiry.Seconds()),
	}, nil
}

func awsStaticCredentials() (string, string) {
	return os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
}
