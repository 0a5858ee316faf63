// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotRegularFile is returned by MoveFile when the source is not a
// regular file.
var ErrNotRegularFile = errors.New("not a regular file")

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// BaseName returns the file name without directory or extension:
// "docs/en/kernel.md" → "kernel".
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Suffix returns the extension without the leading dot:
// "manual.pdf" → "pdf". Empty when there is no extension.
func Suffix(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// NameWithExt replaces the extension of the file named by path:
// NameWithExt("build/manual-en.md", "pdf") → "manual-en.pdf".
func NameWithExt(path, ext string) string {
	return BaseName(path) + "." + ext
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// MoveFile moves src into dstDir, creating dstDir if needed. Rename is
// tried first; when src and dstDir live on different filesystems the
// file is copied and the source removed.
func MoveFile(src, dstDir string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("moving %s: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("moving %s: %w", src, ErrNotRegularFile)
	}

	if err := EnsureDir(dstDir); err != nil {
		return err
	}

	dst := filepath.Join(dstDir, filepath.Base(src))
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := copyFile(src, dst, info.Mode().Perm()); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("removing %s after copy: %w", src, err)
	}
	return nil
}

// copyFile copies src to dst with the given permissions.
func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src) // #nosec G304 -- paths come from the build manifest
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm) // #nosec G304
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}
