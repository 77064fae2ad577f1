package rres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unpackedChunk(t *testing.T, typ FourCC, props []uint32, raw []byte) *Chunk {
	t.Helper()
	payload := BuildPayload(props, raw)
	c := &Chunk{
		Info: ChunkInfo{Type: typ, BaseSize: uint32(len(payload)), PackedSize: uint32(len(payload))},
		Data: payload,
	}
	require.NoError(t, Unpack(c))
	return c
}

func TestResourceViewsMatchType(t *testing.T) {
	raw := unpackedChunk(t, TypeRawData, []uint32{3}, []byte("abc"))
	r, err := AsRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(r.Data))

	_, err = AsText(raw)
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestResourceViewsRejectShortProps(t *testing.T) {
	c := unpackedChunk(t, TypeImage, []uint32{64}, nil)
	_, err := AsImage(c)
	assert.ErrorIs(t, err, ErrMalformedChunk)
}

func TestFontGlyphTable(t *testing.T) {
	raw := make([]byte, 48) // two glyph records
	// glyph 0: codepoint 65
	raw[0] = 65
	// glyph 1: codepoint 66, x=10
	raw[24] = 66
	raw[28] = 10

	c := unpackedChunk(t, TypeFont, []uint32{24, 2, 0, 0}, raw)
	font, err := AsFont(c)
	require.NoError(t, err)
	require.Len(t, font.Glyphs, 2)
	assert.Equal(t, uint32(65), font.Glyphs[0].Codepoint)
	assert.Equal(t, uint32(66), font.Glyphs[1].Codepoint)
	assert.Equal(t, uint32(10), font.Glyphs[1].X)
}
