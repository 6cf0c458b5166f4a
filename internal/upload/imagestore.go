// Package upload provides the remote asset host client for profile images,
// backed by S3-compatible object storage via MinIO.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/url"

	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"auction_platform/internal/config"
)

var (
	ErrUploadFailed = errors.New("upload failed")
	ErrDeleteFailed = errors.New("delete failed")
)

// profileImageFolder is the fixed logical folder all avatars live under.
const profileImageFolder = "profile-images"

// thumbDimension is the bounding box for the avatar thumbnail variant.
const thumbDimension = 256

var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Asset identifies a stored object on the asset host.
type Asset struct {
	PublicID string
	URL      string
}

// ImageStore uploads and deletes profile images on the asset host.
type ImageStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

// NewImageStore creates an ImageStore from storage configuration
func NewImageStore(cfg *config.StorageConfig) (*ImageStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &ImageStore{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: cfg.Endpoint,
		useSSL:   cfg.UseSSL,
	}, nil
}

// EnsureBucket creates the bucket if it does not exist yet
func (s *ImageStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	}
	return nil
}

// UploadProfileImage stores the image under the profile-images folder and
// returns the asset identifier and public URL. A small thumbnail variant is
// generated best-effort; its failure never fails the upload.
func (s *ImageStore) UploadProfileImage(ctx context.Context, r io.Reader, contentType string) (*Asset, error) {
	ext, ok := extByContentType[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported content type %q", ErrUploadFailed, contentType)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	publicID := fmt.Sprintf("%s/%s%s", profileImageFolder, uuid.NewString(), ext)
	_, err = s.client.PutObject(ctx, s.bucket, publicID, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if thumb, err := makeThumbnail(data); err == nil {
		_, _ = s.client.PutObject(ctx, s.bucket, thumbObjectName(publicID), bytes.NewReader(thumb), int64(len(thumb)), minio.PutObjectOptions{
			ContentType: "image/jpeg",
		})
	}

	return &Asset{PublicID: publicID, URL: s.publicURL(publicID)}, nil
}

// Delete removes a previously uploaded image and its thumbnail variant.
// Used as the compensating action when user creation fails after upload.
func (s *ImageStore) Delete(ctx context.Context, publicID string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, publicID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	_ = s.client.RemoveObject(ctx, s.bucket, thumbObjectName(publicID), minio.RemoveObjectOptions{})
	return nil
}

func (s *ImageStore) publicURL(publicID string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return (&url.URL{
		Scheme: scheme,
		Host:   s.endpoint,
		Path:   "/" + s.bucket + "/" + publicID,
	}).String()
}

func thumbObjectName(publicID string) string {
	return publicID + "_thumb.jpg"
}

func makeThumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	resized := imaging.Fit(img, thumbDimension, thumbDimension, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
