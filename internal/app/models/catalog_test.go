package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		requested  int
		totalPages int
		want       int
	}{
		{"in range", 2, 5, 2},
		{"negative lands on first", -3, 5, 0},
		{"past the end lands on last", 9, 5, 4},
		{"exactly one past", 5, 5, 4},
		{"zero total keeps request at zero", 0, 0, 0},
		{"zero total with positive request", 7, 0, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPage(tt.requested, tt.totalPages))
		})
	}
}

func TestPageDisplayHelpers(t *testing.T) {
	empty := Page[Book]{}
	assert.Equal(t, 1, empty.DisplayPage())
	assert.Equal(t, 1, empty.DisplayTotalPages())
	assert.False(t, empty.HasPrev())
	assert.False(t, empty.HasNext())

	middle := Page[Book]{Page: 1, TotalPages: 3}
	assert.Equal(t, 2, middle.DisplayPage())
	assert.True(t, middle.HasPrev())
	assert.True(t, middle.HasNext())

	last := Page[Book]{Page: 2, TotalPages: 3}
	assert.True(t, last.HasPrev())
	assert.False(t, last.HasNext())
}
