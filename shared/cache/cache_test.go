package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedRoom struct {
	Number string  `json:"number"`
	Price  float64 `json:"price"`
}

func TestEncodeDecode(t *testing.T) {
	raw, err := encode(cachedRoom{Number: "101", Price: 150})
	require.NoError(t, err)
	assert.JSONEq(t, `{"number":"101","price":150}`, string(raw))

	var room cachedRoom
	require.NoError(t, decode(string(raw), &room))
	assert.Equal(t, cachedRoom{Number: "101", Price: 150}, room)
}

func TestEncodeDecode_String(t *testing.T) {
	raw, err := encode("5")
	require.NoError(t, err)
	assert.Equal(t, "5", string(raw))

	var count string
	require.NoError(t, decode("5", &count))
	assert.Equal(t, "5", count)
}

func TestEncode_Unsupported(t *testing.T) {
	_, err := encode(make(chan int))

	assert.ErrorContains(t, err, "failed to marshal cache value")
}

func TestDecode_Malformed(t *testing.T) {
	var room cachedRoom

	assert.ErrorContains(t, decode("{", &room), "failed to unmarshal cache value")
}
