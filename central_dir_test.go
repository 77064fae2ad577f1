package rres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentralDirectoryRoundTrip(t *testing.T) {
	cd := &CentralDirectory{Entries: []DirEntry{
		{ID: 1, Offset: 12, FileName: "a.txt"},
		{ID: 2, Offset: 100, FileName: "sprite.png"},
	}}

	raw := cd.Encode()
	got, err := DecodeCentralDirectory(uint32(len(cd.Entries)), raw)
	require.NoError(t, err)
	assert.Equal(t, cd.Entries, got.Entries)

	assert.Equal(t, uint32(2), got.GetResourceID("sprite.png"))
	assert.Equal(t, uint32(0), got.GetResourceID("missing.txt"))
	assert.Equal(t, "a.txt", got.NameForID(1))
}

func TestDecodeCentralDirectoryRejectsTruncatedEntry(t *testing.T) {
	_, err := DecodeCentralDirectory(1, []byte{0x01, 0x00, 0x00, 0x00})
	assert.ErrorIs(t, err, ErrMalformedChunk)
}
