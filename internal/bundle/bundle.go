// Package bundle packages a batch's card artifacts into one downloadable
// zip archive.
package bundle

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Pack collects every PNG artifact under dir into a zip archive at zipPath.
// Archive entries are flat base names. The directory is re-walked at call
// time; files that vanish between listing and reading are skipped rather
// than failing the bundle, since the output directory is ephemeral.
func Pack(dir, zipPath string) error {
	out, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	walkErr := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".png") {
			return nil
		}
		return addEntry(zw, path, entry.Name())
	})
	if walkErr != nil {
		_ = zw.Close()
		return fmt.Errorf("pack %s: %w", dir, walkErr)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	return out.Close()
}

func addEntry(zw *zip.Writer, path, name string) error {
	in, err := os.Open(path)
	if err != nil {
		// The janitor may clear the directory mid-bundle.
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open artifact %s: %w", name, err)
	}
	defer in.Close()

	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("archive entry %s: %w", name, err)
	}
	if _, err := io.Copy(w, in); err != nil {
		return fmt.Errorf("write entry %s: %w", name, err)
	}
	return nil
}
