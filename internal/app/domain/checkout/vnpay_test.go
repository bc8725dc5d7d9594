package checkout

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentReturn(t *testing.T) {
	query := url.Values{
		"vnp_TxnRef":       {"42-1735689600000"},
		"vnp_ResponseCode": {"00"},
	}

	result, err := ParsePaymentReturn(query)
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.OrderID)
	assert.Equal(t, "42-1735689600000", result.TxnRef)
	assert.True(t, result.Success())
}

func TestParsePaymentReturnFailureCode(t *testing.T) {
	query := url.Values{
		"vnp_TxnRef":       {"17-1735689600000"},
		"vnp_ResponseCode": {"24"},
	}

	result, err := ParsePaymentReturn(query)
	require.NoError(t, err)
	assert.Equal(t, int64(17), result.OrderID)
	assert.Equal(t, "24", result.Code)
	assert.False(t, result.Success())
}

func TestParsePaymentReturnMalformed(t *testing.T) {
	tests := []struct {
		name string
		ref  string
	}{
		{"missing entirely", ""},
		{"no separator", "42"},
		{"empty id part", "-1735689600000"},
		{"non numeric id", "abc-1735689600000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := url.Values{"vnp_ResponseCode": {"00"}}
			if tt.ref != "" {
				query.Set("vnp_TxnRef", tt.ref)
			}
			_, err := ParsePaymentReturn(query)
			assert.Error(t, err)
		})
	}
}
