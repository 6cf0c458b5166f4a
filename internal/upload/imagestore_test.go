package upload

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"auction_platform/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImageStore(t *testing.T) {
	store, err := NewImageStore(&config.StorageConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "auction-platform",
	})

	require.NoError(t, err)
	assert.NotNil(t, store)
}

func TestPublicURL(t *testing.T) {
	plain := &ImageStore{bucket: "auction-platform", endpoint: "localhost:9000"}
	assert.Equal(t, "http://localhost:9000/auction-platform/profile-images/a.jpg", plain.publicURL("profile-images/a.jpg"))

	tls := &ImageStore{bucket: "auction-platform", endpoint: "assets.example.com", useSSL: true}
	assert.Equal(t, "https://assets.example.com/auction-platform/profile-images/a.jpg", tls.publicURL("profile-images/a.jpg"))
}

func TestThumbObjectName(t *testing.T) {
	assert.Equal(t, "profile-images/a.jpg_thumb.jpg", thumbObjectName("profile-images/a.jpg"))
}

func TestMakeThumbnail(t *testing.T) {
	// A large input must come back as a bounded JPEG
	src := image.NewRGBA(image.Rect(0, 0, 1024, 768))
	for x := 0; x < 1024; x += 64 {
		for y := 0; y < 768; y++ {
			src.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	thumb, err := makeThumbnail(buf.Bytes())

	require.NoError(t, err)
	decoded, format, err := image.Decode(bytes.NewReader(thumb))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.LessOrEqual(t, decoded.Bounds().Dx(), thumbDimension)
	assert.LessOrEqual(t, decoded.Bounds().Dy(), thumbDimension)
}

func TestMakeThumbnail_NotAnImage(t *testing.T) {
	_, err := makeThumbnail([]byte("definitely not pixels"))
	assert.Error(t, err)
}
