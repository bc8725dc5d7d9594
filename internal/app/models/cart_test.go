package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectedSubtotal(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ID: 1, Title: "Giải tích 1", Price: 50000, Quantity: 1, Selected: true},
		{ID: 2, Title: "Vật lý đại cương", Price: 30000, Quantity: 1, Selected: true},
	}}

	assert.Equal(t, int64(80000), cart.SelectedSubtotal())
	assert.Equal(t, 2, cart.SelectedCount())

	// Deselecting the second item drops it from the subtotal but the
	// item itself stays in the cart.
	cart.Items[1].Selected = false
	assert.Equal(t, int64(50000), cart.SelectedSubtotal())
	assert.Equal(t, 1, cart.SelectedCount())
	assert.Len(t, cart.Items, 2)
}

func TestSelectedSubtotalQuantityFloor(t *testing.T) {
	// A zero or negative quantity still counts the line once.
	cart := Cart{Items: []CartItem{
		{ID: 1, Price: 20000, Quantity: 0, Selected: true},
		{ID: 2, Price: 10000, Quantity: 3, Selected: true},
	}}
	assert.Equal(t, int64(50000), cart.SelectedSubtotal())
}

func TestSelectedSubtotalEmpty(t *testing.T) {
	assert.Equal(t, int64(0), Cart{}.SelectedSubtotal())
	assert.Equal(t, 0, Cart{}.SelectedCount())

	nothingSelected := Cart{Items: []CartItem{{ID: 1, Price: 99000, Quantity: 2}}}
	assert.Equal(t, int64(0), nothingSelected.SelectedSubtotal())
}
