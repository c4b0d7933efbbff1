package object

import "strings"

// Hash is a 40-character hex-encoded SHA-1 digest. It is the sole primary
// key of the store: two objects with identical serialized bytes always have
// identical hashes.
type Hash string

// Type identifies the kind of object stored.
type Type string

const (
	TypeBlob Type = "blob"
	TypeTree Type = "tree"
	// TypeUnknown classifies tree entries whose mode is not recognized.
	// It is a data classification, not a parse failure.
	TypeUnknown Type = "unknown"
)

const (
	// Tree mode strings. Regular and executable files share the "100"
	// prefix; directories use the fixed six-character mode.
	ModeDir        = "040000"
	ModeFile       = "100644"
	ModeExecutable = "100755"

	modeBlobPrefix = "100"
)

// Blob holds raw file content plus the content hash of its serialized form.
type Blob struct {
	Content []byte
	Sha     Hash
}

// TreeEntry is one entry in a tree object. Sha references another object by
// hash only; parsing a tree never fetches or validates referenced objects.
type TreeEntry struct {
	Path string
	Mode string
	Type Type
	Sha  Hash
}

// Tree holds an ordered list of entries plus the tree's own content hash.
// Entries stay in serialized order; the codec does not require path
// uniqueness within a tree.
type Tree struct {
	Entries []TreeEntry
	Sha     Hash
}

// TypeForMode derives an entry's object type from its mode string.
// Unrecognized modes classify as TypeUnknown rather than failing.
func TypeForMode(mode string) Type {
	switch {
	case strings.HasPrefix(mode, modeBlobPrefix):
		return TypeBlob
	case mode == ModeDir:
		return TypeTree
	default:
		return TypeUnknown
	}
}
