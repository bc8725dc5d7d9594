package media

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type MediaHandlers struct {
	cloudinary *Cloudinary
	logger     *zap.Logger
}

func NewMediaHandlers(cloudinary *Cloudinary, logger *zap.Logger) *MediaHandlers {
	return &MediaHandlers{cloudinary: cloudinary, logger: logger}
}

// DeleteImage removes an uploaded asset when an admin replaces or
// deletes the record it belonged to. Missing credentials are a server
// misconfiguration, not a client error.
func (h *MediaHandlers) DeleteImage(c *gin.Context) {
	publicID := strings.TrimSpace(c.PostForm("publicId"))
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId is required"})
		return
	}

	err := h.cloudinary.Destroy(c.Request.Context(), publicID)
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, ErrNotConfigured):
		h.logger.Error("Cloudinary credentials missing, refusing delete", zap.String("public_id", publicID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "media storage is not configured"})
	default:
		h.logger.Warn("Failed to delete cloudinary asset", zap.String("public_id", publicID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to delete image"})
	}
}
