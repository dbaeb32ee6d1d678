package workspace

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Zip archives the named project directory into a temporary zip file and
// returns its path together with a cleanup func that removes it. Entries are
// prefixed with the project name so extracting recreates the project folder.
func (r *Root) Zip(project string) (string, func(), error) {
	abs, err := r.Resolve(project)
	if err != nil {
		return "", nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", nil, fmt.Errorf("failed to stat project: %w", err)
	}

	if !info.IsDir() {
		return "", nil, fmt.Errorf("project %q is not a directory", project)
	}

	tmp, err := os.CreateTemp("", filepath.Base(project)+"-*.zip")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create archive file: %w", err)
	}

	cleanup := func() { os.Remove(tmp.Name()) }

	if err := writeArchive(tmp, abs, filepath.Base(project)); err != nil {
		tmp.Close()
		cleanup()

		return "", nil, err
	}

	if err := tmp.Close(); err != nil {
		cleanup()

		return "", nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	return tmp.Name(), cleanup, nil
}

func writeArchive(w io.Writer, root, prefix string) error {
	zw := zip.NewWriter(w)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if rel == "." {
			return nil
		}

		name := filepath.ToSlash(filepath.Join(prefix, rel))

		if d.IsDir() {
			// directory entries keep empty folders in the archive
			_, err := zw.Create(name + "/")

			return err
		}

		entry, err := zw.Create(name)
		if err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(entry, file)

		return err
	})
	if err != nil {
		zw.Close()

		return fmt.Errorf("failed to build archive: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}

	return nil
}
