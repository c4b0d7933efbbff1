package object

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// compress zlib-compresses serialized object bytes for persistence.
func compress(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: close zlib stream: %v", ErrWrite, err)
	}
	return buf.Bytes(), nil
}

// decompress inflates stored object bytes. A truncated or corrupt stream
// fails with ErrDecompression.
func decompress(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		_ = zr.Close()
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	if err := zr.Close(); err != nil {
		return nil, fmt.Errorf("%w: close zlib stream: %v", ErrDecompression, err)
	}
	return raw, nil
}
