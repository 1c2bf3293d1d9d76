package pagination_test

import (
	"testing"
	"time"

	"github.com/settleline/bizledger/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken_RoundTrip(t *testing.T) {
	documentDate := time.Date(2026, 2, 14, 10, 30, 0, 123456789, time.UTC)
	createdAt := time.Date(2026, 2, 14, 10, 30, 1, 987654321, time.UTC)

	token := pagination.EncodeToken(documentDate, createdAt)
	gotDate, gotCreated, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, documentDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "%%%not-base64%%%"},
		{"missing separator", "MjAyNi0wMi0xNFQxMDozMDowMFo="},
		{"garbage timestamps", "Z2FyYmFnZXxnYXJiYWdl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := pagination.DecodeToken(tt.token)
			assert.Error(t, err)
		})
	}
}
