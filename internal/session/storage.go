package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage is the two-entry key/value state the boundary persists: the
// serialized user under "user" and the opaque token under "token". It
// plays the role the browser's per-origin local storage plays for the
// frontend.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryStorage keeps entries for the process lifetime only. It is the
// default when no state directory is configured, and what tests use.
type MemoryStorage struct {
	entries map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{entries: map[string]string{}}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	v, ok := m.entries[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) error {
	m.entries[key] = value
	return nil
}

func (m *MemoryStorage) Delete(key string) error {
	delete(m.entries, key)
	return nil
}

// FileStorage persists the entries as a small JSON file so a restarted
// process rehydrates the way a reloaded browser tab does.
type FileStorage struct {
	path string
}

const stateFile = "session.json"

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("session storage: %w", err)
	}
	return &FileStorage{path: filepath.Join(dir, stateFile)}, nil
}

func (f *FileStorage) Get(key string) (string, bool) {
	entries, err := f.read()
	if err != nil {
		return "", false
	}
	v, ok := entries[key]
	return v, ok
}

func (f *FileStorage) Set(key, value string) error {
	entries, err := f.read()
	if err != nil {
		entries = map[string]string{}
	}
	entries[key] = value
	return f.write(entries)
}

func (f *FileStorage) Delete(key string) error {
	entries, err := f.read()
	if err != nil {
		return nil
	}
	delete(entries, key)
	return f.write(entries)
}

func (f *FileStorage) read() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}
	entries := map[string]string{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (f *FileStorage) write(entries map[string]string) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("session storage: encode: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return fmt.Errorf("session storage: write: %w", err)
	}
	return nil
}
