package deploy

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// safeJoin joins rel under dest and rejects paths escaping dest.
func safeJoin(dest, rel string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(rel))
	if target != dest && !strings.HasPrefix(target, dest+string(filepath.Separator)) {
		return "", fmt.Errorf("entry %q escapes %s", rel, dest)
	}
	return target, nil
}

func writeFile(fsys afero.Fs, path string, r io.Reader, mode os.FileMode) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := fsys.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// copyFS writes every file of src below dest.
func copyFS(ctx context.Context, fsys afero.Fs, dest string, src fs.FS) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		target, err := safeJoin(dest, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsys.MkdirAll(target, 0o755)
		}

		in, err := src.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()
		return writeFile(fsys, target, in, 0o644)
	})
}

// extractZip unpacks the archive at path into dest.
func extractZip(ctx context.Context, fsys afero.Fs, path, dest string) error {
	f, err := fsys.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		return err
	}

	if err := fsys.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	for _, entry := range zr.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		target, err := safeJoin(dest, entry.Name)
		if err != nil {
			return err
		}
		if entry.FileInfo().IsDir() {
			if err := fsys.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := extractEntry(fsys, entry, target); err != nil {
			return err
		}
	}
	return nil
}

func extractEntry(fsys afero.Fs, entry *zip.File, target string) error {
	rc, err := entry.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	return writeFile(fsys, target, rc, 0o644)
}
