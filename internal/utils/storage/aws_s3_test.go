package storage

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestDataURIRoundTrip(t *testing.T) {
	uri := EncodeDataURI(pngHeader)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	data, ok := DecodeDataURI(uri)
	require.True(t, ok)
	assert.Equal(t, pngHeader, data)
}

func TestDecodeDataURIRejectsOtherStrings(t *testing.T) {
	for _, s := range []string{
		"",
		"https://bucket.s3.amazonaws.com/receipts/a.png",
		"data:image/png,rawpayload",
		"data:image/png;base64,%%%",
	} {
		_, ok := DecodeDataURI(s)
		assert.False(t, ok, s)
	}
}
