package rres

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func readFileBytes(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func readHeaderFromPath(path string) (FileHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileHeader{}, err
	}
	defer f.Close()
	return readHeader(f)
}

// flipByteAt flips the low bit of the byte at offset in the file at path.
func flipByteAt(t *testing.T, path string, offset int64) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	require.NoError(t, err)
	defer f.Close()

	buf := make([]byte, 1)
	_, err = f.ReadAt(buf, offset)
	require.NoError(t, err)
	buf[0] ^= 0x01
	_, err = f.WriteAt(buf, offset)
	require.NoError(t, err)
}
