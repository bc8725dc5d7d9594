package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishMakesToastVisible(t *testing.T) {
	bus := NewBus()
	event := bus.Publish("sid-1", "Xóa tác giả thành công", Success)

	visible := bus.Visible("sid-1")
	require.Len(t, visible, 1)
	assert.Equal(t, event.ID, visible[0].ID)
	assert.Equal(t, "Xóa tác giả thành công", visible[0].Message)
	assert.Equal(t, Success, visible[0].Kind)

	// Other sessions never see it.
	assert.Empty(t, bus.Visible("sid-2"))
}

func TestVisibleKeepsPublicationOrder(t *testing.T) {
	bus := NewBus()
	first := bus.Publish("sid", "một", Info)
	second := bus.Publish("sid", "hai", Info)

	visible := bus.Visible("sid")
	require.Len(t, visible, 2)
	assert.Equal(t, first.ID, visible[0].ID)
	assert.Equal(t, second.ID, visible[1].ID)
}

func TestAutoDismiss(t *testing.T) {
	bus := newBus(20 * time.Millisecond)
	bus.Publish("sid", "sắp biến mất", Warning)
	require.Len(t, bus.Visible("sid"), 1)

	assert.Eventually(t, func() bool {
		return len(bus.Visible("sid")) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestManualDismissIsIdempotent(t *testing.T) {
	bus := NewBus()
	event := bus.Publish("sid", "đóng tôi đi", Error)

	bus.Dismiss("sid", event.ID)
	assert.Empty(t, bus.Visible("sid"))

	// Second dismissal (e.g. the timer firing after a manual close)
	// must be a no-op.
	bus.Dismiss("sid", event.ID)
	assert.Empty(t, bus.Visible("sid"))
}

func TestSubscribeReceivesOwnSessionOnly(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("sid-a")
	defer sub.Close()

	bus.Publish("sid-b", "cho người khác", Info)
	bus.Publish("sid-a", "cho tôi", Success)

	select {
	case event := <-sub.C():
		assert.Equal(t, "cho tôi", event.Message)
	case <-time.After(time.Second):
		t.Fatal("expected an event for sid-a")
	}

	select {
	case event := <-sub.C():
		t.Fatalf("unexpected extra event: %q", event.Message)
	default:
	}
}
