package rres

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHeaderRoundTrip(t *testing.T) {
	h := FileHeader{ID: magicCurrent, Version: Version, ChunkCount: 3, CDOffset: 1234}
	got, err := DecodeFileHeader(h.Encode())
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

// An empty input with no directory produces just the bare 12-byte header.
func TestEmptyFileProducesBareHeader(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/empty.rres"

	// With IncludeDirectory defaulted true, an empty input still gets a
	// CDIR chunk (0 entries) appended, so this isn't byte-identical to the
	// bare header unless the directory is suppressed.
	require.NoError(t, Write(path, nil, WriteOptions{IncludeDirectory: false}))

	data := readFileBytes(t, path)
	want := []byte{'r', 'r', 'e', 's', 0x64, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	assert.Equal(t, want, data)

	h, err := readHeaderFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), h.ChunkCount)
	assert.Equal(t, uint32(0), h.CDOffset)
}

// Single TEXT chunk, NONE/NONE, no directory — byte-exact layout.
func TestSingleTextChunkByteExactLayout(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/s2.rres"

	chunks := []ChunkSpec{{
		Type:     TypeText,
		ID:       0x11223344,
		Props:    []uint32{5, 0, 0, 0x0409},
		Raw:      []byte("hello"),
		FileName: "", // no directory
	}}
	require.NoError(t, Write(path, chunks, WriteOptions{IncludeDirectory: false}))

	infos, err := LoadChunkInfoAll(path)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	info := infos[0]
	assert.Equal(t, TypeText, info.Type)
	assert.Equal(t, uint32(0x11223344), info.ID)
	assert.Equal(t, CompNone, info.CompType)
	assert.Equal(t, CipherNone, info.CipherType)
	assert.Equal(t, uint32(25), info.BaseSize)
	assert.Equal(t, uint32(25), info.PackedSize)
	assert.Equal(t, uint32(0), info.NextOffset)

	c, err := LoadResourceChunk(path, 0x11223344)
	require.NoError(t, err)
	assert.Equal(t, crc32Of(c.Data), info.CRC32)
	require.NoError(t, Unpack(c))
	text, err := AsText(c)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(text.Data))
	assert.Equal(t, uint32(0x0409), text.CultureCode)
}

// IMGE chunk, DEFLATE/NONE, with directory — round trip + name lookup.
func TestCompressedImageWithDirectoryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/s3.rres"

	pixels := make([]byte, 16384)
	for i := range pixels {
		pixels[i] = byte(i % 7)
	}
	id := Hash("sprite.png")
	chunks := []ChunkSpec{{
		Type:     TypeImage,
		ID:       id,
		Props:    []uint32{64, 64, 1, 7},
		Raw:      pixels,
		CompType: CompDeflate,
		FileName: "sprite.png",
	}}
	require.NoError(t, Write(path, chunks, DefaultWriteOptions()))

	infos, err := LoadChunkInfoAll(path)
	require.NoError(t, err)
	require.Len(t, infos, 2) // IMGE + CDIR
	assert.Less(t, infos[0].PackedSize, infos[0].BaseSize)

	c, err := LoadResourceChunk(path, id)
	require.NoError(t, err)
	require.NoError(t, Unpack(c))
	img, err := AsImage(c)
	require.NoError(t, err)
	assert.Equal(t, pixels, img.Pixels)

	cd, err := LoadCentralDirectory(path)
	require.NoError(t, err)
	assert.Equal(t, id, cd.GetResourceID("sprite.png"))
}

// Two-chunk FNTG+IMGE resource linked via NextOffset.
func TestMultiChunkFontLinkedViaNextOffset(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/s4.rres"

	const id = 0xF0F0F0F0
	glyph := make([]byte, 24)
	binary.LittleEndian.PutUint32(glyph[0:4], 65) // 'A'
	atlas := make([]byte, 256)

	chunks := []ChunkSpec{
		{Type: TypeFont, ID: id, Props: []uint32{24, 1, 1, 0}, Raw: glyph, FileName: "font.ttf"},
		{Type: TypeImage, ID: id, Props: []uint32{16, 16, 1, 7}, Raw: atlas},
	}
	require.NoError(t, Write(path, chunks, DefaultWriteOptions()))

	multi, err := LoadResourceMulti(path, id)
	require.NoError(t, err)
	require.Len(t, multi, 2)
	assert.Equal(t, TypeFont, multi[0].Info.Type)
	assert.Equal(t, TypeImage, multi[1].Info.Type)
	assert.NotZero(t, multi[0].Info.NextOffset)
	assert.Zero(t, multi[1].Info.NextOffset)

	require.NoError(t, Unpack(multi[0]))
	font, err := AsFont(multi[0])
	require.NoError(t, err)
	require.Len(t, font.Glyphs, 1)
	assert.Equal(t, uint32(65), font.Glyphs[0].Codepoint)
}

// Tampered file — flipping one payload bit is caught by CRC.
func TestTamperedChunkFailsCRCCheck(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/s5.rres"

	chunks := []ChunkSpec{{
		Type:  TypeText,
		ID:    0x11223344,
		Props: []uint32{5, 0, 0, 0x0409},
		Raw:   []byte("hello"),
	}}
	require.NoError(t, Write(path, chunks, WriteOptions{IncludeDirectory: false}))

	flipByteAt(t, path, int64(fileHeaderSize+chunkInfoSize))

	_, err := LoadResourceChunk(path, 0x11223344)
	require.ErrorIs(t, err, ErrCorruptedChunk)
}

// AES-encrypted chunk — correct password, then password cleared.
func TestAESEncryptedChunkRequiresPassword(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/s6.rres"

	ClearPassword()
	SetPassword([]byte("password12345"))
	defer ClearPassword()

	chunks := []ChunkSpec{{
		Type:       TypeRawData,
		ID:         0xAA55AA55,
		Props:      []uint32{5},
		Raw:        []byte("hello"),
		CipherType: CipherAES,
	}}
	require.NoError(t, Write(path, chunks, WriteOptions{IncludeDirectory: false}))

	c, err := LoadResourceChunk(path, 0xAA55AA55)
	require.NoError(t, err)
	require.NoError(t, Unpack(c))
	raw, err := AsRaw(c)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw.Data))

	ClearPassword()
	c2, err := LoadResourceChunk(path, 0xAA55AA55)
	require.NoError(t, err)
	err = Unpack(c2)
	require.ErrorIs(t, err, ErrNoPassword)
}

func TestHashIsDeterministic(t *testing.T) {
	assert.Equal(t, Hash("sprite.png"), Hash("sprite.png"))
	assert.Equal(t, uint32(0), Hash(""))
}

func TestTooManyChunksRejected(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/toomany.rres"
	chunks := make([]ChunkSpec, MaxChunkCount+1)
	for i := range chunks {
		chunks[i] = ChunkSpec{Type: TypeRawData, ID: uint32(i + 1), Props: []uint32{0}}
	}
	err := Write(path, chunks, DefaultWriteOptions())
	require.ErrorIs(t, err, ErrTooManyChunks)
}

func TestLookupMissingIDIsNotFound(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/notfound.rres"
	require.NoError(t, Write(path, []ChunkSpec{{Type: TypeRawData, ID: 1, Props: []uint32{0}}}, DefaultWriteOptions()))
	_, err := LoadResourceChunk(path, 0xDEAD)
	require.ErrorIs(t, err, ErrNotFound)
}
