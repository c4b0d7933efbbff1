package object

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is a content-addressed object store with a 2-character fan-out
// directory layout: <root>/ab/cdef0123... The root directory is the object
// directory itself and is assumed to exist and be writable; shard
// subdirectories are created lazily on first write.
//
// A Store holds no state beyond the root path. All operations are
// synchronous and open/close their own file handles, so concurrent use is
// safe: identical content converges on the same path, and shard creation
// tolerates redundant calls.
type Store struct {
	root string
}

// NewStore creates a Store rooted at the given object directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// objectPath returns the filesystem path for a validated hash.
func (s *Store) objectPath(h Hash) string {
	return filepath.Join(s.root, string(h[:2]), string(h[2:]))
}

// Has reports whether the store contains an object with the given hash.
// Malformed hashes report false.
func (s *Store) Has(h Hash) bool {
	if !ValidHash(h) {
		return false
	}
	_, err := os.Stat(s.objectPath(h))
	return err == nil
}

// resolve validates the hash, locates the object file, and returns its
// decompressed serialized bytes. Each stage fails fast: ErrInvalidHash,
// then ErrNotFound, then ErrDecompression.
func (s *Store) resolve(h Hash) ([]byte, error) {
	if !ValidHash(h) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHash, h)
	}
	path := s.objectPath(h)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, h)
		}
		return nil, fmt.Errorf("read object %s: %w", h, err)
	}
	return decompress(data)
}

// Stat resolves an object and reports its header type tag and payload byte
// length without decoding the payload structure. The tag is returned as-is;
// tags other than "blob" and "tree" are possible for hand-written objects.
func (s *Store) Stat(h Hash) (Type, int, error) {
	raw, err := s.resolve(h)
	if err != nil {
		return "", 0, err
	}
	nul := bytes.IndexByte(raw, 0)
	if nul < 0 {
		return "", 0, fmt.Errorf("stat object %s: missing header terminator", h)
	}
	tag, _, _ := strings.Cut(string(raw[:nul]), " ")
	return Type(tag), len(raw) - nul - 1, nil
}

// GetBlob retrieves and decodes a blob by hash.
func (s *Store) GetBlob(h Hash) (*Blob, error) {
	raw, err := s.resolve(h)
	if err != nil {
		return nil, err
	}
	return DecodeBlob(raw)
}

// GetTree retrieves and decodes a tree by hash.
func (s *Store) GetTree(h Hash) (*Tree, error) {
	raw, err := s.resolve(h)
	if err != nil {
		return nil, err
	}
	return DecodeTree(raw)
}

// Store persists already-serialized object bytes (header included). It
// computes the content hash, creates the shard directory if absent, and
// writes the compressed bytes via temp file + rename so readers never see
// a partial object. Storing the same bytes twice is idempotent; an object
// already present is left untouched.
func (s *Store) Store(raw []byte) (Hash, error) {
	h := HashBytes(raw)

	// Fast path: already exists.
	if s.Has(h) {
		return h, nil
	}

	compressed, err := compress(raw)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(s.root, string(h[:2]))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: mkdir %s: %v", ErrWrite, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("%w: tmpfile: %v", ErrWrite, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(compressed); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: close: %v", ErrWrite, err)
	}

	if err := os.Rename(tmpName, s.objectPath(h)); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: rename: %v", ErrWrite, err)
	}

	return h, nil
}

// GenerateBlob reads a file, serializes its contents under the blob
// header, and decodes the result back through the verification codec. The
// blob is NOT persisted; callers inspect the hash and content and decide
// whether to Store the encoded bytes.
func GenerateBlob(filePath string) (*Blob, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("generate blob %s: %w", filePath, err)
	}
	return DecodeBlob(EncodeBlob(content))
}
