package notifications

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/components/banner"
	"github.com/bangg2309/book-exchange/internal/app/notify"
	"github.com/bangg2309/book-exchange/internal/app/session"
)

type Handlers struct {
	bus    *notify.Bus
	store  *session.Store
	logger *zap.Logger
}

func NewHandlers(bus *notify.Bus, store *session.Store, logger *zap.Logger) *Handlers {
	return &Handlers{bus: bus, store: store, logger: logger}
}

// Stream pushes the session's toasts to the page over SSE. The
// subscription lives exactly as long as the connection.
func (h *Handlers) Stream(c *gin.Context) {
	sid := h.store.ID(c)
	sub := h.bus.Subscribe(sid)
	defer sub.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	// Replay toasts that are still visible so a reconnecting page does
	// not lose them.
	for _, event := range h.bus.Visible(sid) {
		c.SSEvent("toast", renderToast(event))
	}
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case event, ok := <-sub.C():
			if !ok {
				return false
			}
			c.SSEvent("toast", renderToast(event))
			return true
		}
	})
}

// Dismiss removes one toast ahead of its timer. Dismissing an already
// gone toast is a no-op.
func (h *Handlers) Dismiss(c *gin.Context) {
	h.bus.Dismiss(h.store.ID(c), c.PostForm("id"))
	c.Status(204)
}

func renderToast(event notify.Event) string {
	var buf bytes.Buffer
	component := banner.Banner(banner.BannerProps{
		Type:        banner.BannerType(event.Kind),
		Message:     event.Message,
		ID:          "toast-" + event.ID,
		Dismissable: true,
		AutoDismiss: int(notify.DismissAfter.Seconds()),
	})
	if err := component.Render(context.Background(), &buf); err != nil {
		return ""
	}
	// SSE data must stay on one line.
	return strings.ReplaceAll(buf.String(), "\n", "")
}
