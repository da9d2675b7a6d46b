// Package report saves a recovered key and plaintext to a text file.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"caesar_cipher/internal/model"
)

const (
	KeyLabel     = "Подобранный ключ"
	MessageLabel = "Расшифрованное сообщение"
)

var (
	ErrInvalidTarget = errors.New("invalid output target")
	ErrFilesystem    = errors.New("filesystem error")
)

// Format renders the two-line report.
func Format(c model.Candidate) string {
	return KeyLabel + ": " + strconv.Itoa(c.Key) + "\n" +
		MessageLabel + ": " + c.Text + "\n"
}

// CheckTarget rejects an empty path or one naming an existing directory.
func CheckTarget(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidTarget)
	}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidTarget, path)
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: stat %s: %v", ErrFilesystem, path, err)
	}
	return nil
}

// Write creates or overwrites path with the report for c. The parent
// directory is created if missing. The content is written to a temporary
// file next to path and renamed into place, so path is either left as it was
// or holds the full report.
func Write(path string, c model.Candidate) (err error) {
	if err := CheckTarget(path); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrFilesystem, dir, err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrFilesystem, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err = f.WriteString(Format(c)); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrFilesystem, tmp, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("%w: sync %s: %v", ErrFilesystem, tmp, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrFilesystem, tmp, err)
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("%w: chmod %s: %v", ErrFilesystem, tmp, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: rename to %s: %v", ErrFilesystem, path, err)
	}
	return nil
}
