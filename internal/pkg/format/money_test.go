package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVND(t *testing.T) {
	assert.Equal(t, "50.000 ₫", VND(50000))
	assert.Equal(t, "1.250.000 ₫", VND(1250000))
	assert.Equal(t, "0 ₫", VND(0))
	assert.Equal(t, "999 ₫", VND(999))
}
