package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caskvc/cask/pkg/object"
)

// Repo represents an opened cask repository.
type Repo struct {
	RootDir string        // working directory root
	CaskDir string        // .cask/ directory
	Store   *object.Store // content-addressed object store
}

// Init creates a new cask repository at path. It creates the
// .cask/objects/ directory and a default config. Returns an error if a
// .cask/ directory already exists.
func Init(path string) (*Repo, error) {
	caskDir := filepath.Join(path, ".cask")

	if _, err := os.Stat(caskDir); err == nil {
		return nil, fmt.Errorf("init: repository already exists at %s", caskDir)
	}

	objectsDir := filepath.Join(caskDir, "objects")
	if err := os.MkdirAll(objectsDir, 0o755); err != nil {
		return nil, fmt.Errorf("init: mkdir %s: %w", objectsDir, err)
	}

	r := &Repo{
		RootDir: path,
		CaskDir: caskDir,
		Store:   object.NewStore(objectsDir),
	}
	if err := r.WriteConfig(&Config{}); err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}
	return r, nil
}

// Open searches upward from path for a .cask/ directory and opens the
// repository. Returns an error if no .cask/ directory is found.
func Open(path string) (*Repo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("open: abs path: %w", err)
	}

	cur := abs
	for {
		caskDir := filepath.Join(cur, ".cask")
		info, err := os.Stat(caskDir)
		if err == nil && info.IsDir() {
			return &Repo{
				RootDir: cur,
				CaskDir: caskDir,
				Store:   object.NewStore(filepath.Join(caskDir, "objects")),
			}, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return nil, fmt.Errorf("open: not a cask repository (or any parent up to /)")
		}
		cur = parent
	}
}
