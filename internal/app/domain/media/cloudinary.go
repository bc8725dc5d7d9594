package media

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/pkg/config"
)

// Cloudinary's destroy endpoint requires a signature over the sorted
// request parameters followed by the API secret.
type Cloudinary struct {
	cfg    config.CloudinaryConfig
	http   *http.Client
	logger *zap.Logger
	now    func() time.Time
}

func NewCloudinary(cfg config.CloudinaryConfig, logger *zap.Logger) *Cloudinary {
	return &Cloudinary{
		cfg:    cfg,
		http:   &http.Client{Timeout: 15 * time.Second},
		logger: logger,
		now:    time.Now,
	}
}

var ErrNotConfigured = errors.New("cloudinary credentials are not configured")

// Sign produces the hex SHA-1 signature for a destroy request at the
// given timestamp.
func Sign(publicID string, timestamp int64, apiSecret string) string {
	payload := fmt.Sprintf("public_id=%s&timestamp=%d%s", publicID, timestamp, apiSecret)
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}

type destroyResponse struct {
	Result string `json:"result"`
}

// Destroy deletes an uploaded image. Without credentials it refuses
// rather than attempting an unsigned call.
func (c *Cloudinary) Destroy(ctx context.Context, publicID string) error {
	if !c.cfg.Configured() {
		return ErrNotConfigured
	}
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return errors.New("empty public id")
	}

	timestamp := c.now().Unix()
	form := url.Values{
		"public_id": {publicID},
		"timestamp": {strconv.FormatInt(timestamp, 10)},
		"api_key":   {c.cfg.APIKey},
		"signature": {Sign(publicID, timestamp, c.cfg.APISecret)},
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/destroy", c.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "building destroy request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "calling cloudinary")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("cloudinary destroy returned status %d", resp.StatusCode)
	}

	var body destroyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errors.Wrap(err, "decoding destroy response")
	}
	// "not found" is treated as success; the asset is gone either way.
	if body.Result != "ok" && body.Result != "not found" {
		return errors.Errorf("cloudinary destroy result %q", body.Result)
	}

	c.logger.Info("Deleted cloudinary asset", zap.String("public_id", publicID))
	return nil
}
