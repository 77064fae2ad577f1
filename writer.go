package rres

import (
	"fmt"
	"os"

	"github.com/bpfs/rres/codec"
)

// ChunkSpec is one input to Write: an already-assembled logical resource
// (type tag, id, props, raw bytes) plus its requested codec tags and an
// optional directory name.
//
// Multiple consecutive ChunkSpecs sharing the same ID form one logical
// multi-chunk resource, written back-to-back and linked by NextOffset —
// this is how a font with a separate glyph atlas image is expressed: a
// FNTG spec immediately followed by an IMGE spec, both with the same ID.
type ChunkSpec struct {
	Type       FourCC
	ID         uint32
	Props      []uint32
	Raw        []byte
	CompType   CompType
	CipherType CipherType

	// FileName, if non-empty, adds a central-directory entry pointing at
	// the first chunk of this resource. Only meaningful on the first
	// ChunkSpec of a multi-chunk run; later siblings in the same run are
	// reachable via NextOffset, not a second directory entry.
	FileName string
}

// WriteOptions controls the overall write.
type WriteOptions struct {
	IncludeDirectory bool
	DefaultComp      CompType
	DefaultCipher    CipherType
}

// DefaultWriteOptions returns the conventional defaults: no compression,
// no encryption, and a trailing central directory.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{IncludeDirectory: true, DefaultComp: CompNone, DefaultCipher: CipherNone}
}

// Write packs chunks into a new rres file at path: provisional header,
// stream chunk-info + payload records, optional trailing CDIR chunk, then
// a seek-back patch of chunkCount/cdOffset/version in the header.
func Write(path string, chunks []ChunkSpec, opts WriteOptions) (err error) {
	if len(chunks) > MaxChunkCount {
		return fmt.Errorf("%w: %d", ErrTooManyChunks, len(chunks))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer func() {
		cerr := f.Close()
		if err != nil {
			// Partial files are never valid; best-effort cleanup so a
			// half-written file doesn't masquerade as real data.
			os.Remove(path)
			return
		}
		if cerr != nil {
			err = fmt.Errorf("%w: %v", ErrIO, cerr)
		}
	}()

	header := FileHeader{ID: magicCurrent, Version: Version, ChunkCount: 0, CDOffset: 0}
	if _, err = f.Write(header.Encode()); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	var dirEntries []DirEntry
	offset := uint32(fileHeaderSize)
	totalChunks := 0

	for i := 0; i < len(chunks); {
		j := i + 1
		for j < len(chunks) && chunks[j].ID == chunks[i].ID {
			j++
		}
		run := chunks[i:j]
		runOffset, err := writeRun(f, run, opts, offset)
		if err != nil {
			return err
		}
		if run[0].FileName != "" {
			dirEntries = append(dirEntries, DirEntry{ID: run[0].ID, Offset: offset, FileName: run[0].FileName})
		}
		offset = runOffset
		totalChunks += len(run)
		i = j
	}

	cdOffset := uint32(0)
	if opts.IncludeDirectory {
		cd := &CentralDirectory{Entries: dirEntries}
		raw := cd.Encode()
		payload := BuildPayload([]uint32{uint32(len(dirEntries))}, raw)
		info := ChunkInfo{
			Type:       TypeDir,
			ID:         0,
			CompType:   CompNone,
			CipherType: CipherNone,
			PackedSize: uint32(len(payload)),
			BaseSize:   uint32(len(payload)),
			CRC32:      crc32Of(payload),
		}
		cdOffset = offset
		if _, err = f.Write(info.Encode()); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
		if _, err = f.Write(payload); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
		totalChunks++
	}

	if totalChunks > MaxChunkCount {
		return fmt.Errorf("%w: %d", ErrTooManyChunks, totalChunks)
	}

	header.ChunkCount = uint16(totalChunks)
	header.CDOffset = cdOffset
	if _, err = f.Seek(0, 0); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if _, err = f.Write(header.Encode()); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// writeRun packs and writes one logical resource's chunk(s), linking
// siblings via NextOffset, and returns the file offset just past the run.
func writeRun(f *os.File, run []ChunkSpec, opts WriteOptions, startOffset uint32) (uint32, error) {
	type packed struct {
		info    ChunkInfo
		payload []byte
	}

	items := make([]packed, len(run))
	for i, spec := range run {
		comp := spec.CompType
		cipher := spec.CipherType
		if comp == CompNone && opts.DefaultComp != CompNone {
			comp = opts.DefaultComp
		}
		if cipher == CipherNone && opts.DefaultCipher != CipherNone {
			cipher = opts.DefaultCipher
		}

		base := BuildPayload(spec.Props, spec.Raw)
		packedBytes, err := codec.Compress(codec.CompType(comp), base)
		if err != nil {
			return 0, translateCodecErr(err)
		}
		packedBytes, err = codec.Encrypt(codec.CipherType(cipher), currentKey, packedBytes)
		if err != nil {
			return 0, translateCodecErr(err)
		}

		items[i] = packed{
			info: ChunkInfo{
				Type:       spec.Type,
				ID:         spec.ID,
				CompType:   comp,
				CipherType: cipher,
				PackedSize: uint32(len(packedBytes)),
				BaseSize:   uint32(len(base)),
				CRC32:      crc32Of(packedBytes),
			},
			payload: packedBytes,
		}
	}

	// Compute each chunk's absolute offset, then patch NextOffset so every
	// chunk but the last points at its sibling's info record.
	offsets := make([]uint32, len(items))
	cur := startOffset
	for i, it := range items {
		offsets[i] = cur
		cur += chunkInfoSize + uint32(len(it.payload))
	}
	for i := range items {
		if i+1 < len(items) {
			items[i].info.NextOffset = offsets[i+1]
		} else {
			items[i].info.NextOffset = 0
		}
	}

	for _, it := range items {
		if _, err := f.Write(it.info.Encode()); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrIO, err)
		}
		if _, err := f.Write(it.payload); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrIO, err)
		}
	}

	return cur, nil
}
