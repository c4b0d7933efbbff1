package repo

import (
	"fmt"
	"path/filepath"

	"github.com/caskvc/cask/pkg/object"
)

// GenerateBlob builds a blob from a file in the working directory without
// persisting it. Relative paths are resolved against the repository root.
func (r *Repo) GenerateBlob(path string) (*object.Blob, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.RootDir, path)
	}
	return object.GenerateBlob(path)
}

// StoreBlob persists a blob and returns its hash.
func (r *Repo) StoreBlob(b *object.Blob) (object.Hash, error) {
	h, err := r.Store.Store(object.EncodeBlob(b.Content))
	if err != nil {
		return "", fmt.Errorf("store blob: %w", err)
	}
	return h, nil
}

// StoreTree serializes and persists a tree from its entries, returning the
// tree hash.
func (r *Repo) StoreTree(entries []object.TreeEntry) (object.Hash, error) {
	raw, err := object.EncodeTree(entries)
	if err != nil {
		return "", fmt.Errorf("store tree: %w", err)
	}
	h, err := r.Store.Store(raw)
	if err != nil {
		return "", fmt.Errorf("store tree: %w", err)
	}
	return h, nil
}
