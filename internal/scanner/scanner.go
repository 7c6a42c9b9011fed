// Package scanner enumerates the files to be checked under a root directory.
package scanner

import (
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/agbru/lintbubble/internal/errors"
)

// ValidateRoot reports a DirectoryError if root is missing, is not a
// directory, or cannot be listed.
func ValidateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return apperrors.DirectoryError{Path: root, Cause: err}
	}
	if !info.IsDir() {
		return apperrors.DirectoryError{Path: root, Cause: fs.ErrInvalid}
	}
	f, err := os.Open(root)
	if err != nil {
		return apperrors.DirectoryError{Path: root, Cause: err}
	}
	defer f.Close()
	if _, err := f.ReadDir(1); err != nil && !errors.Is(err, io.EOF) {
		return apperrors.DirectoryError{Path: root, Cause: err}
	}
	return nil
}

// Scan lazily yields the path of every regular file under root whose name
// ends with suffix, in filepath.WalkDir order. Symbolic links are reported by
// WalkDir as non-regular entries and are neither yielded nor followed.
//
// Errors reading a directory below root are yielded as ("", err) and the walk
// continues with the next entry; an error on root itself ends the sequence.
// Stopping the range loop early stops the walk.
func Scan(root, suffix string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		walkRoot := root
		// A trailing separator makes WalkDir resolve a symlinked root.
		if fi, err := os.Lstat(root); err == nil && fi.Mode()&fs.ModeSymlink != 0 {
			walkRoot = root + string(filepath.Separator)
		}
		_ = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == walkRoot {
					yield("", apperrors.DirectoryError{Path: root, Cause: err})
					return filepath.SkipAll
				}
				if !yield("", apperrors.DirectoryError{Path: path, Cause: err}) {
					return filepath.SkipAll
				}
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), suffix) {
				return nil
			}
			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// Collect drains Scan into a slice, stopping at the first error.
func Collect(root, suffix string) ([]string, error) {
	var paths []string
	for path, err := range Scan(root, suffix) {
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
