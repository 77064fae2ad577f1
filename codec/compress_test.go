package codec

import (
	"bytes"
	"strings"
	"testing"
)

func TestCompressNoneIsPassthrough(t *testing.T) {
	data := []byte("hello world")
	out, err := Compress(CompNone, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("NONE compression should not modify data")
	}
}

func TestDeflateRoundTrip(t *testing.T) {
	data := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 64))
	packed, err := Compress(CompDeflate, data)
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	if len(packed) >= len(data) {
		t.Fatalf("expected deflate to shrink repetitive input: got %d want <%d", len(packed), len(data))
	}
	out, err := Decompress(CompDeflate, packed)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch")
	}
}

func TestSnappyRoundTrip(t *testing.T) {
	data := []byte(strings.Repeat("snappy snappy snappy ", 32))
	packed, err := Compress(CompSnappy, data)
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	out, err := Decompress(CompSnappy, packed)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch")
	}
}

func TestUnsupportedCompressionTag(t *testing.T) {
	_, err := Compress(CompLZ4, []byte("x"))
	if err == nil {
		t.Fatalf("expected error for unimplemented LZ4 tag")
	}
}
