package media

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/pkg/config"
)

func TestSign(t *testing.T) {
	// The signature covers "public_id=<id>&timestamp=<ts>" with the
	// secret appended, hex SHA-1.
	sum := sha1.Sum([]byte("public_id=books/abc123&timestamp=1735689600supersecret"))
	want := hex.EncodeToString(sum[:])

	assert.Equal(t, want, Sign("books/abc123", 1735689600, "supersecret"))
}

func TestSignVariesWithInputs(t *testing.T) {
	base := Sign("books/abc", 1735689600, "secret")
	assert.Len(t, base, 40)
	assert.NotEqual(t, base, Sign("books/def", 1735689600, "secret"))
	assert.NotEqual(t, base, Sign("books/abc", 1735689601, "secret"))
	assert.NotEqual(t, base, Sign("books/abc", 1735689600, "other"))
}

func TestDestroyFailsClosedWithoutCredentials(t *testing.T) {
	cloudinary := NewCloudinary(config.CloudinaryConfig{}, zap.NewNop())

	err := cloudinary.Destroy(context.Background(), "books/abc123")
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestDestroyRejectsEmptyPublicID(t *testing.T) {
	cloudinary := NewCloudinary(config.CloudinaryConfig{
		CloudName: "demo",
		APIKey:    "key",
		APISecret: "secret",
	}, zap.NewNop())

	err := cloudinary.Destroy(context.Background(), "   ")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotConfigured))
}
