package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"
)

var (
	// ErrInvalidEncoding indicates the stored contents are not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")
)

// Storage provides whole-file access to the contents being searched.
type Storage interface {
	ReadContents(path string) (string, error)
}

// FileStorage reads contents from the local filesystem.
type FileStorage struct {
	readFile func(name string) ([]byte, error)
}

// NewFileStorage returns a Storage backed by the local filesystem.
func NewFileStorage() *FileStorage {
	return &FileStorage{readFile: os.ReadFile}
}

// ReadContents reads the whole file at path and returns it as text.
func (s *FileStorage) ReadContents(path string) (string, error) {
	data, err := s.readFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}
	return string(data), nil
}

// MemoryStorage keeps contents in a map keyed by path. It is meant for tests
// and is not safe for concurrent use.
type MemoryStorage struct {
	files map[string]string
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{files: make(map[string]string)}
}

// Put stores contents under path, replacing any previous value.
func (s *MemoryStorage) Put(path, contents string) {
	s.files[path] = contents
}

// ReadContents returns the contents stored under path.
func (s *MemoryStorage) ReadContents(path string) (string, error) {
	contents, ok := s.files[path]
	if !ok {
		return "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if !utf8.ValidString(contents) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}
	return contents, nil
}
