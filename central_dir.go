package rres

import "encoding/binary"

// DirEntry is one central-directory entry: it maps a human-readable file
// name to the resource id and the absolute file offset of that resource's
// first chunk info record.
type DirEntry struct {
	ID       uint32
	Offset   uint32
	FileName string
}

// CentralDirectory is the in-memory form of a CDIR chunk's raw payload: a
// sequence of variable-width name entries. It exclusively owns its entry
// vector and the name bytes each entry carries.
type CentralDirectory struct {
	Entries []DirEntry
}

// Encode serializes the directory entries into the CDIR raw byte layout:
// (id, offset, fileNameLen, fileName) tuples back to back, fileName
// NUL-terminated per entry.
func (cd *CentralDirectory) Encode() []byte {
	size := 0
	for _, e := range cd.Entries {
		size += 4 + 4 + 4 + len(e.FileName) + 1
	}
	buf := make([]byte, size)
	off := 0
	for _, e := range cd.Entries {
		nameLen := uint32(len(e.FileName) + 1) // includes the terminating NUL
		binary.LittleEndian.PutUint32(buf[off:off+4], e.ID)
		binary.LittleEndian.PutUint32(buf[off+4:off+8], e.Offset)
		binary.LittleEndian.PutUint32(buf[off+8:off+12], nameLen)
		off += 12
		copy(buf[off:], e.FileName)
		off += len(e.FileName)
		buf[off] = 0
		off++
	}
	return buf
}

// DecodeCentralDirectory walks a CDIR chunk's raw bytes, bounds-checking
// every field.
func DecodeCentralDirectory(entryCount uint32, raw []byte) (*CentralDirectory, error) {
	cd := &CentralDirectory{Entries: make([]DirEntry, 0, entryCount)}
	off := 0
	for i := uint32(0); i < entryCount; i++ {
		if off+12 > len(raw) {
			return nil, ErrMalformedChunk
		}
		id := binary.LittleEndian.Uint32(raw[off : off+4])
		offset := binary.LittleEndian.Uint32(raw[off+4 : off+8])
		nameLen := binary.LittleEndian.Uint32(raw[off+8 : off+12])
		off += 12
		if nameLen == 0 || uint64(off)+uint64(nameLen) > uint64(len(raw)) {
			return nil, ErrMalformedChunk
		}
		nameBytes := raw[off : off+int(nameLen)]
		off += int(nameLen)
		// Strip the terminating NUL the writer always includes.
		name := nameBytes
		if len(name) > 0 && name[len(name)-1] == 0 {
			name = name[:len(name)-1]
		}
		cd.Entries = append(cd.Entries, DirEntry{ID: id, Offset: offset, FileName: string(name)})
	}
	return cd, nil
}

// GetResourceID returns the id stored in the entry matching fileName, or 0
// if not found.
func (cd *CentralDirectory) GetResourceID(fileName string) uint32 {
	for _, e := range cd.Entries {
		if e.FileName == fileName {
			return e.ID
		}
	}
	return 0
}

// NameForID is the reverse lookup: the first entry name bound to id, or
// "" if none matches.
func (cd *CentralDirectory) NameForID(id uint32) string {
	for _, e := range cd.Entries {
		if e.ID == id {
			return e.FileName
		}
	}
	return ""
}
