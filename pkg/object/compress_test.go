package object

import (
	"bytes"
	"errors"
	"testing"
)

func TestCompressRoundTrip(t *testing.T) {
	raw := []byte("blob 11\x00hello world")
	compressed, err := compress(raw)
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	got, err := decompress(compressed)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Errorf("round trip: got %q, want %q", got, raw)
	}
}

func TestDecompressTruncatedStream(t *testing.T) {
	raw := []byte("blob 11\x00hello world")
	compressed, err := compress(raw)
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	if _, err := decompress(compressed[:len(compressed)-4]); !errors.Is(err, ErrDecompression) {
		t.Errorf("truncated stream: got %v, want ErrDecompression", err)
	}
}

func TestDecompressGarbage(t *testing.T) {
	if _, err := decompress([]byte("definitely not zlib")); !errors.Is(err, ErrDecompression) {
		t.Errorf("garbage input: got %v, want ErrDecompression", err)
	}
}
