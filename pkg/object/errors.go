package object

import "errors"

// Every operation fails with exactly one of these sentinels, wrapped with
// context via %w. Callers branch with errors.Is; no failure is ever
// panicked or retried.
var (
	// ErrInvalidHash indicates a hash string that is not exactly 40 hex
	// characters.
	ErrInvalidHash = errors.New("invalid object hash")
	// ErrNotFound indicates that no object file exists at the resolved
	// path.
	ErrNotFound = errors.New("object not found")
	// ErrDecompression indicates a truncated or corrupt compressed
	// stream. It is distinct from the decode errors so callers can tell
	// "not a valid compressed object" from "valid object of unexpected
	// shape".
	ErrDecompression = errors.New("decompress object")
	// ErrBlobDecode indicates a malformed blob header: missing
	// terminator, wrong type tag, non-integer length, or a declared
	// length that does not match the payload byte count.
	ErrBlobDecode = errors.New("parse blob header")
	// ErrTreeDecode indicates malformed tree entry structure: a missing
	// mode or path delimiter, or a truncated entry hash.
	ErrTreeDecode = errors.New("parse tree")
	// ErrWrite indicates an underlying filesystem fault while persisting
	// an object.
	ErrWrite = errors.New("write object")
)
