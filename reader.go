package rres

import (
	"fmt"
	"os"

	"github.com/bpfs/rres/codec"
	"github.com/bpfs/rres/debug"
	"github.com/bpfs/rres/utils/logger"
)

// readHeader reads and validates the file header from the start of f. It leaves f
// positioned right after the header on success.
func readHeader(f *os.File) (FileHeader, error) {
	buf := make([]byte, fileHeaderSize)
	if _, err := readFull(f, buf); err != nil {
		return FileHeader{}, fmt.Errorf("%w: %v", ErrIO, err)
	}
	h, err := DecodeFileHeader(buf)
	if err != nil {
		return FileHeader{}, err
	}
	if !ValidMagic(h.ID) {
		return FileHeader{}, fmt.Errorf("%w at %s", ErrBadMagic, debug.WhereAmI())
	}
	if h.Version > Version {
		return FileHeader{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	return h, nil
}

func readFull(f *os.File, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := f.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// LoadChunkInfoAll parses the file header and returns every chunk info
// record in storage order.
func LoadChunkInfoAll(path string) ([]ChunkInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	h, err := readHeader(f)
	if err != nil {
		return nil, err
	}

	infos := make([]ChunkInfo, 0, h.ChunkCount)
	for i := uint16(0); i < h.ChunkCount; i++ {
		buf := make([]byte, chunkInfoSize)
		if _, err := readFull(f, buf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		info, err := DecodeChunkInfo(buf)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
		if info.PackedSize > 0 {
			if _, err := f.Seek(int64(info.PackedSize), 1); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrIO, err)
			}
		}
	}
	return infos, nil
}

// LoadCentralDirectory loads and decodes the CDIR chunk referenced by the
// header's cdOffset. A file with cdOffset == 0 has no directory; that is
// not an error.
func LoadCentralDirectory(path string) (*CentralDirectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	h, err := readHeader(f)
	if err != nil {
		return nil, err
	}
	if h.CDOffset == 0 {
		return &CentralDirectory{}, nil
	}

	chunk, err := readChunkAt(f, int64(h.CDOffset))
	if err != nil {
		return nil, err
	}
	if chunk.Info.Type != TypeDir {
		return nil, fmt.Errorf("%w: expected CDIR at cdOffset", ErrMalformedChunk)
	}
	if err := Unpack(chunk); err != nil {
		return nil, err
	}
	if len(chunk.Props) < 1 {
		return nil, ErrMalformedChunk
	}
	return DecodeCentralDirectory(chunk.Props[0], chunk.Raw)
}

// GetChunkInfo reads the single info record at entry.Offset.
func GetChunkInfo(path string, entry DirEntry) (ChunkInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ChunkInfo{}, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	if _, err := f.Seek(int64(entry.Offset), 0); err != nil {
		return ChunkInfo{}, fmt.Errorf("%w: %v", ErrIO, err)
	}
	buf := make([]byte, chunkInfoSize)
	if _, err := readFull(f, buf); err != nil {
		return ChunkInfo{}, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return DecodeChunkInfo(buf)
}

// readChunkAt reads one chunk (info + packed payload) whose info record
// starts at the given absolute file offset.
func readChunkAt(f *os.File, offset int64) (*Chunk, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	if offset < 0 || offset+chunkInfoSize > fi.Size() {
		return nil, fmt.Errorf("%w: %v", ErrIO, "chunk info out of range")
	}
	if _, err := f.Seek(offset, 0); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	buf := make([]byte, chunkInfoSize)
	if _, err := readFull(f, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	info, err := DecodeChunkInfo(buf)
	if err != nil {
		return nil, err
	}
	remaining := fi.Size() - (offset + chunkInfoSize)
	if int64(info.PackedSize) > remaining {
		return nil, fmt.Errorf("%w: packedSize exceeds remaining file bytes", ErrIO)
	}
	data := make([]byte, info.PackedSize)
	if _, err := readFull(f, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	if crc32Of(data) != info.CRC32 {
		logger.Log.Errorf("块校验失败 type=%s id=%#x offset=%d: %s", info.Type, info.ID, offset, debug.WhereAmI())
		return nil, fmt.Errorf("%w at %s", ErrCorruptedChunk, debug.WhereAmI())
	}
	return &Chunk{Info: info, Data: data}, nil
}

// LoadResourceChunk loads the first chunk whose Info.ID == id.
func LoadResourceChunk(path string, id uint32) (*Chunk, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	h, err := readHeader(f)
	if err != nil {
		return nil, err
	}

	offset := int64(fileHeaderSize)
	for i := uint16(0); i < h.ChunkCount; i++ {
		buf := make([]byte, chunkInfoSize)
		if _, err := readFull(f, buf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		info, err := DecodeChunkInfo(buf)
		if err != nil {
			return nil, err
		}
		if info.ID == id {
			return readChunkAt(f, offset)
		}
		if _, err := f.Seek(int64(info.PackedSize), 1); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		offset += chunkInfoSize + int64(info.PackedSize)
	}
	return nil, ErrNotFound
}

// LoadResourceMulti loads the full sibling chain starting from the first
// chunk matching id, following NextOffset. The chain length is bounded by
// ChunkCount to prevent cycles from a malicious or corrupted file.
func LoadResourceMulti(path string, id uint32) ([]*Chunk, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	h, err := readHeader(f)
	if err != nil {
		return nil, err
	}

	var first *Chunk
	offset := int64(fileHeaderSize)
	found := false
	for i := uint16(0); i < h.ChunkCount && !found; i++ {
		buf := make([]byte, chunkInfoSize)
		if _, err := readFull(f, buf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		info, err := DecodeChunkInfo(buf)
		if err != nil {
			return nil, err
		}
		if info.ID == id {
			first, err = readChunkAt(f, offset)
			if err != nil {
				return nil, err
			}
			found = true
			break
		}
		if _, err := f.Seek(int64(info.PackedSize), 1); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		offset += chunkInfoSize + int64(info.PackedSize)
	}
	if !found {
		return nil, ErrNotFound
	}

	chain := []*Chunk{first}
	next := first.Info.NextOffset
	for i := uint16(0); next != 0 && i < h.ChunkCount; i++ {
		c, err := readChunkAt(f, int64(next))
		if err != nil {
			return nil, err
		}
		chain = append(chain, c)
		next = c.Info.NextOffset
	}
	return chain, nil
}

// Unpack decrypts then decompresses a chunk in place (decrypt-then-
// decompress, the reverse of the compress-then-encrypt pack order), then
// splits the resulting payload into props/raw. It is idempotent when the
// chunk is already plaintext and uncompressed.
func Unpack(c *Chunk) error {
	if c.Unpacked() {
		if c.Props == nil && c.Raw == nil {
			props, raw, err := SplitPayload(c.Data)
			if err != nil {
				return err
			}
			c.Props, c.Raw = props, raw
		}
		return nil
	}

	decrypted, err := codec.Decrypt(codec.CipherType(c.Info.CipherType), currentKey, c.Data)
	if err != nil {
		return translateCodecErr(err)
	}
	decompressed, err := codec.Decompress(codec.CompType(c.Info.CompType), decrypted)
	if err != nil {
		return translateCodecErr(err)
	}
	if uint32(len(decompressed)) != c.Info.BaseSize {
		return fmt.Errorf("%w: got %d want %d", ErrSizeMismatch, len(decompressed), c.Info.BaseSize)
	}

	props, raw, err := SplitPayload(decompressed)
	if err != nil {
		return err
	}

	c.Data = decompressed
	c.Props = props
	c.Raw = raw
	c.Info.CompType = CompNone
	c.Info.CipherType = CipherNone
	return nil
}
