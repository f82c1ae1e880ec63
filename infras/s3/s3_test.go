package s3

import (
	"context"
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name      string
		publicURL string
		url       string
		want      string
	}{
		{
			name:      "own object",
			publicURL: "https://cdn.example.com/hotel",
			url:       "https://cdn.example.com/hotel/room type/abc.png",
			want:      "room type/abc.png",
		},
		{
			name:      "foreign url",
			publicURL: "https://cdn.example.com/hotel",
			url:       "https://elsewhere.example.com/abc.png",
			want:      "",
		},
		{
			name:      "bare prefix",
			publicURL: "https://cdn.example.com/hotel",
			url:       "https://cdn.example.com/hotelier/abc.png",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, objectKey(tt.publicURL, tt.url))
		})
	}
}

func TestNew_WithoutBucket(t *testing.T) {
	storage := New(&config.Config{}, mocks.NewOtel())

	_, err := storage.Upload(context.Background(), "room type", nil, nil)
	require.ErrorIs(t, err, ErrNotConfigured)
	require.NoError(t, storage.Delete(context.Background(), "key"))
	assert.Empty(t, storage.ObjectKey("https://cdn.example.com/x.png"))
}
