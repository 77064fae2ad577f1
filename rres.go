// Package rres implements the rres binary resource-container format: a
// single file packing heterogeneous assets (raw blobs, text, images,
// waveforms, fonts, meshes) behind a uniform chunk record, with optional
// per-chunk compression and encryption and a tail-positioned central
// directory mapping file names to resource ids.
package rres

import "encoding/binary"

// Version is the file-format version this package writes, encoded as
// major*100+minor (100 == "1.0").
const Version uint16 = 100

// magicCurrent is the four-byte id this package writes into every file
// header it produces. magicLegacy is accepted on read for interop with
// older packers that wrote the mixed-case variant.
var (
	magicCurrent = [4]byte{'r', 'r', 'e', 's'}
	magicLegacy  = [4]byte{'r', 'R', 'E', 'S'}
)

// FourCC is a four-character type tag, compared as a plain byte array.
type FourCC [4]byte

func fourCC(s string) FourCC {
	var f FourCC
	copy(f[:], s)
	return f
}

// Resource type tags, one per supported chunk kind.
var (
	TypeRawData = fourCC("RAWD")
	TypeText    = fourCC("TEXT")
	TypeImage   = fourCC("IMGE")
	TypeWave    = fourCC("WAVE")
	TypeVertex  = fourCC("VRTX")
	TypeFont    = fourCC("FNTG")
	TypeDir     = fourCC("CDIR")
)

func (f FourCC) String() string { return string(f[:]) }

// CompType is the compression-algorithm tag stored in a chunk info record.
type CompType uint8

// Compression tags. CompNone and CompDeflate are always supported;
// CompSnappy is an additional implemented algorithm. The remaining tags
// are reserved identifiers with no implementation in this tree.
const (
	CompNone CompType = iota
	CompDeflate
	CompLZ4
	CompLZMA2
	CompBZip2
	CompBrotli
	CompSnappy
)

// CipherType is the encryption-algorithm tag stored in a chunk info record.
type CipherType uint8

// Cipher tags. CipherNone, CipherAES and CipherXChaCha20 are always
// supported; CipherXOR and CipherAESGCM are additional implemented
// ciphers. The remaining tags are reserved identifiers with no
// implementation in this tree.
const (
	CipherNone CipherType = iota
	CipherXOR
	CipherAES
	CipherTDES
	CipherBlowfish
	CipherXTEA
	CipherXChaCha20
	CipherAESGCM
)

// FileHeader is the 12-byte file header that opens every rres file.
type FileHeader struct {
	ID         [4]byte
	Version    uint16
	ChunkCount uint16
	CDOffset   uint32
	Reserved   uint32
}

const fileHeaderSize = 12

// Encode writes the header in its on-disk little-endian layout.
func (h FileHeader) Encode() []byte {
	buf := make([]byte, fileHeaderSize)
	copy(buf[0:4], h.ID[:])
	binary.LittleEndian.PutUint16(buf[4:6], h.Version)
	binary.LittleEndian.PutUint16(buf[6:8], h.ChunkCount)
	binary.LittleEndian.PutUint32(buf[8:12], h.CDOffset)
	return buf
}

// DecodeFileHeader parses a 12-byte buffer into a FileHeader. It does not
// validate the magic id; callers check that separately (BadMagic is a
// distinct error from a short read).
func DecodeFileHeader(buf []byte) (FileHeader, error) {
	if len(buf) < fileHeaderSize {
		return FileHeader{}, ErrIO
	}
	var h FileHeader
	copy(h.ID[:], buf[0:4])
	h.Version = binary.LittleEndian.Uint16(buf[4:6])
	h.ChunkCount = binary.LittleEndian.Uint16(buf[6:8])
	h.CDOffset = binary.LittleEndian.Uint32(buf[8:12])
	return h, nil
}

// ValidMagic reports whether id matches the current or legacy magic bytes.
func ValidMagic(id [4]byte) bool {
	return id == magicCurrent || id == magicLegacy
}

// ChunkInfo is the 32-byte record that precedes every chunk payload.
type ChunkInfo struct {
	Type       FourCC
	ID         uint32
	CompType   CompType
	CipherType CipherType
	Flags      uint16
	PackedSize uint32
	BaseSize   uint32
	NextOffset uint32
	Reserved   uint32
	CRC32      uint32
}

const chunkInfoSize = 32

// Encode writes the info record in its on-disk little-endian layout.
func (c ChunkInfo) Encode() []byte {
	buf := make([]byte, chunkInfoSize)
	copy(buf[0:4], c.Type[:])
	binary.LittleEndian.PutUint32(buf[4:8], c.ID)
	buf[8] = byte(c.CompType)
	buf[9] = byte(c.CipherType)
	binary.LittleEndian.PutUint16(buf[10:12], c.Flags)
	binary.LittleEndian.PutUint32(buf[12:16], c.PackedSize)
	binary.LittleEndian.PutUint32(buf[16:20], c.BaseSize)
	binary.LittleEndian.PutUint32(buf[20:24], c.NextOffset)
	binary.LittleEndian.PutUint32(buf[24:28], c.Reserved)
	binary.LittleEndian.PutUint32(buf[28:32], c.CRC32)
	return buf
}

// DecodeChunkInfo parses a 32-byte buffer into a ChunkInfo.
func DecodeChunkInfo(buf []byte) (ChunkInfo, error) {
	if len(buf) < chunkInfoSize {
		return ChunkInfo{}, ErrIO
	}
	var c ChunkInfo
	copy(c.Type[:], buf[0:4])
	c.ID = binary.LittleEndian.Uint32(buf[4:8])
	c.CompType = CompType(buf[8])
	c.CipherType = CipherType(buf[9])
	c.Flags = binary.LittleEndian.Uint16(buf[10:12])
	c.PackedSize = binary.LittleEndian.Uint32(buf[12:16])
	c.BaseSize = binary.LittleEndian.Uint32(buf[16:20])
	c.NextOffset = binary.LittleEndian.Uint32(buf[20:24])
	c.Reserved = binary.LittleEndian.Uint32(buf[24:28])
	c.CRC32 = binary.LittleEndian.Uint32(buf[28:32])
	return c, nil
}

// Chunk is a fully materialized resource chunk: its on-disk info record
// plus its in-memory data, which transitions Packed -> Unpacked once
// Unpack decrypts and decompresses it.
type Chunk struct {
	Info ChunkInfo

	// Data holds the packed (on-disk) bytes until Unpack is called, after
	// which it holds the serialized payload (propCount+props+raw).
	Data []byte

	// Props and Raw are only populated after the payload has been split
	// (see BuildPayload / SplitPayload).
	Props []uint32
	Raw   []byte
}

// Unpacked reports whether the chunk has already been decrypted and
// decompressed (Info.CompType == CompNone && Info.CipherType == CipherNone
// is the on-disk convention this package uses to mark that state).
func (c *Chunk) Unpacked() bool {
	return c.Info.CompType == CompNone && c.Info.CipherType == CipherNone
}
