package object

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// The codec works on full serialized object bytes: "<type> <len>\0<payload>".
// Encode produces them, Decode consumes them. Both sides count payload
// length in bytes, never in characters.

// EncodeBlob serializes raw content under the blob header.
func EncodeBlob(content []byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "blob %d\x00", len(content))
	buf.Write(content)
	return buf.Bytes()
}

// DecodeBlob parses serialized blob bytes. The header must read exactly
// "blob <len>" where <len> equals the payload byte count; any violation is
// a single combined ErrBlobDecode failure. Sha is recomputed from raw.
func DecodeBlob(raw []byte) (*Blob, error) {
	nul := bytes.IndexByte(raw, 0)
	if nul < 0 {
		return nil, fmt.Errorf("%w: missing header terminator", ErrBlobDecode)
	}

	header := string(raw[:nul])
	fields := strings.Split(header, " ")
	if len(fields) != 2 || fields[0] != string(TypeBlob) {
		return nil, fmt.Errorf("%w: malformed header %q", ErrBlobDecode, header)
	}
	declared, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: malformed header %q", ErrBlobDecode, header)
	}

	payload := raw[nul+1:]
	if declared != len(payload) {
		return nil, fmt.Errorf("%w: declared length %d, payload is %d bytes", ErrBlobDecode, declared, len(payload))
	}

	content := make([]byte, len(payload))
	copy(content, payload)
	return &Blob{Content: content, Sha: HashBytes(raw)}, nil
}

// EncodeTree serializes entries in caller-supplied order. Each entry is
// "<mode> <path>\0" followed by the 20 raw bytes of its hash; the
// concatenation is prefixed with the tree header.
func EncodeTree(entries []TreeEntry) ([]byte, error) {
	var payload bytes.Buffer
	for _, e := range entries {
		sha, err := hex.DecodeString(string(e.Sha))
		if err != nil || len(sha) != 20 {
			return nil, fmt.Errorf("encode tree entry %q: bad hash %q", e.Path, e.Sha)
		}
		fmt.Fprintf(&payload, "%s %s\x00", e.Mode, e.Path)
		payload.Write(sha)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "tree %d\x00", payload.Len())
	buf.Write(payload.Bytes())
	return buf.Bytes(), nil
}

// DecodeTree parses serialized tree bytes. The header is located and split
// like a blob's but its fields are not cross-checked against the payload;
// tree validation is deliberately weaker than blob validation and kept so
// for compatibility. Entries are scanned iteratively: a space ends the
// mode, a NUL ends the path, and the 20 bytes after the NUL are the entry
// hash. A missing delimiter or truncated hash fails the whole decode with
// ErrTreeDecode.
func DecodeTree(raw []byte) (*Tree, error) {
	nul := bytes.IndexByte(raw, 0)
	if nul < 0 {
		return nil, fmt.Errorf("%w: missing header terminator", ErrTreeDecode)
	}
	// Header fields are intentionally not cross-checked against the
	// payload; only the terminator position matters here.
	tree := &Tree{Sha: HashBytes(raw)}
	i := nul + 1
	for i < len(raw) {
		sp := bytes.IndexByte(raw[i:], ' ')
		if sp < 0 {
			return nil, fmt.Errorf("%w: entry %d: missing mode delimiter", ErrTreeDecode, len(tree.Entries))
		}
		mode := string(raw[i : i+sp])

		rest := raw[i+sp+1:]
		z := bytes.IndexByte(rest, 0)
		if z < 0 {
			return nil, fmt.Errorf("%w: entry %d: missing path terminator", ErrTreeDecode, len(tree.Entries))
		}
		path := string(rest[:z])

		hashStart := i + sp + 1 + z + 1
		if hashStart+20 > len(raw) {
			return nil, fmt.Errorf("%w: entry %d: truncated hash", ErrTreeDecode, len(tree.Entries))
		}
		sha := Hash(hex.EncodeToString(raw[hashStart : hashStart+20]))

		tree.Entries = append(tree.Entries, TreeEntry{
			Path: path,
			Mode: mode,
			Type: TypeForMode(mode),
			Sha:  sha,
		})
		i = hashStart + 20
	}
	return tree, nil
}
