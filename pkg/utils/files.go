package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// IsJavaFile checks if a file is a Java source file by extension. The
// comparison is case-insensitive; a bare dotfile such as ".java" has no
// extension and does not count.
func IsJavaFile(filename string) bool {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	if ext == base {
		return false
	}
	return strings.EqualFold(ext, ".java")
}

// FindJavaFiles recursively finds all Java source files in a directory
func FindJavaFiles(root string) ([]string, error) {
	var javaFiles []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip build output directories and hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if name == "target" || name == "build" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if info.Mode().IsRegular() && IsJavaFile(filepath.Base(path)) {
			javaFiles = append(javaFiles, path)
		}

		return nil
	})

	return javaFiles, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// WriteFileAtomic writes bytes via a temp file in the same directory, then
// atomically replaces the target.
func WriteFileAtomic(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
