// Package gassets serves the files bundled with the GUI. A directory on disk
// can shadow them so translations are editable without a rebuild.
package gassets

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed assets
var embedded embed.FS

// Dir is searched before the embedded files when not empty.
var Dir = os.Getenv("JIGSAW_ASSETS")

func ReadAsset(name string) ([]byte, error) {
	if Dir != "" {
		data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(name)))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return fs.ReadFile(embedded, name)
}

// Names lists the base names without extension of the files in dir with
// the given extension, from both sources, sorted.
func Names(dir, ext string) ([]string, error) {
	seen := map[string]bool{}
	collect := func(fsys fs.FS) error {
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if !e.IsDir() && path.Ext(e.Name()) == ext {
				seen[strings.TrimSuffix(e.Name(), ext)] = true
			}
		}
		return nil
	}
	if err := collect(embedded); err != nil {
		return nil, err
	}
	if Dir != "" {
		if err := collect(os.DirFS(Dir)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}
