package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Blob is the persistence medium: one opaque value holding the serialized
// session list, read on startup and fully overwritten on every mutation.
type Blob interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// ErrNoBlob is returned by Read when nothing has been persisted yet. The
// store treats it as an empty history, not a failure.
var ErrNoBlob = errors.New("no persisted sessions")

// FileBlob stores the session list in a single JSON file, creating parent
// directories on first write.
type FileBlob struct {
	Path string
}

func (b *FileBlob) Read() ([]byte, error) {
	data, err := os.ReadFile(b.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoBlob
	}
	return data, err
}

func (b *FileBlob) Write(data []byte) error {
	if dir := filepath.Dir(b.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(b.Path, data, 0o600)
}

// MemoryBlob is an in-memory Blob for tests and ephemeral runs.
type MemoryBlob struct {
	data []byte
	set  bool
}

func (b *MemoryBlob) Read() ([]byte, error) {
	if !b.set {
		return nil, ErrNoBlob
	}
	return b.data, nil
}

func (b *MemoryBlob) Write(data []byte) error {
	b.data = append([]byte(nil), data...)
	b.set = true
	return nil
}
