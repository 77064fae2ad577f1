package rres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadRoundTrip(t *testing.T) {
	props := []uint32{5, 0, 0, 0x0409}
	raw := []byte("hello")

	buf := BuildPayload(props, raw)
	assert.Equal(t, BaseSize(props, raw), uint32(len(buf)))

	gotProps, gotRaw, err := SplitPayload(buf)
	require.NoError(t, err)
	assert.Equal(t, props, gotProps)
	assert.Equal(t, raw, gotRaw)
}

func TestSplitPayloadRejectsOverflowingPropCount(t *testing.T) {
	// propCount = 0xFFFFFFFF, far larger than the 4-byte buffer it's in.
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	_, _, err := SplitPayload(buf)
	assert.ErrorIs(t, err, ErrMalformedChunk)
}

func TestSplitPayloadRejectsShortBuffer(t *testing.T) {
	_, _, err := SplitPayload([]byte{0x01})
	assert.ErrorIs(t, err, ErrMalformedChunk)
}

func TestBuildPayloadEmpty(t *testing.T) {
	buf := BuildPayload(nil, nil)
	assert.Equal(t, []byte{0, 0, 0, 0}, buf)
	props, raw, err := SplitPayload(buf)
	require.NoError(t, err)
	assert.Empty(t, props)
	assert.Empty(t, raw)
}
