package storage

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store persists one JSON document per key under DataDir, mirroring most
// keys into PublicDir for the frontend to consume. Writes are atomic
// (temp file + rename), so a reader never observes a torn document.
//
// There are no cross-document transactions: each key is independently the
// unit of atomicity, and concurrent writers to the same key are serialized
// by a per-key mutex with last-write-wins semantics.
type Store struct {
	DataDir   string
	PublicDir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(dataDir, publicDir string) (*Store, error) {
	for _, dir := range []string{dataDir, publicDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return &Store{
		DataDir:   dataDir,
		PublicDir: publicDir,
		locks:     make(map[string]*sync.Mutex),
	}, nil
}

func (s *Store) keyLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// Read loads the document at key. A missing, corrupt, or null document is
// destructively replaced with fallback, which is then returned; corruption
// is logged but never surfaced to the caller.
func Read[T any](s *Store, key string, fallback T) T {
	l := s.keyLock(key)
	l.Lock()
	defer l.Unlock()

	path := filepath.Join(s.DataDir, key)
	raw, err := os.ReadFile(path)
	if err != nil {
		// First access: seed the file with the fallback.
		if writeErr := atomicWrite(path, fallback); writeErr != nil {
			log.Printf("storage: seeding %s failed: %v", key, writeErr)
		}
		return fallback
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil || isJSONNull(raw) {
		log.Printf("storage: %s is corrupt, resetting to fallback", key)
		if writeErr := atomicWrite(path, fallback); writeErr != nil {
			log.Printf("storage: resetting %s failed: %v", key, writeErr)
		}
		return fallback
	}
	return out
}

// Write persists v at key in the primary tree only.
func (s *Store) Write(key string, v any) error {
	l := s.keyLock(key)
	l.Lock()
	defer l.Unlock()
	return atomicWrite(filepath.Join(s.DataDir, key), v)
}

// WriteMirrored persists v at key in the primary tree and, unless the key
// is mirror-exempt, in the public tree as well. The two writes are each
// atomic but not atomic together; a crash in between leaves the mirror
// stale until the next write.
func (s *Store) WriteMirrored(key string, v any) error {
	l := s.keyLock(key)
	l.Lock()
	defer l.Unlock()

	if err := atomicWrite(filepath.Join(s.DataDir, key), v); err != nil {
		return err
	}
	if mirrorExempt[key] {
		return nil
	}
	return atomicWrite(filepath.Join(s.PublicDir, key), v)
}

// atomicWrite marshals v as indented JSON into a temp file in the target
// directory, fsyncs it, and renames it over path.
func atomicWrite(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}
	return os.Chmod(path, 0o644)
}

// isJSONNull reports whether raw successfully parsed but carries no value
// ("null", empty string, or empty input), in which case the fallback wins.
func isJSONNull(raw []byte) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "null", `""`:
		return true
	}
	return false
}
