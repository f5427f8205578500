// Package store persists a snapshot of the enriched catalog so repeated
// launches can skip re-parsing the CSV. The snapshot is keyed by a digest
// of the source file; a changed file simply misses and the loader runs.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/catalens/catalens/internal/domain"
	"github.com/goccy/go-json"
	bolt "go.etcd.io/bbolt"
)

var bucketSnapshots = []byte("snapshots")

// SnapshotStore caches enriched catalog records in BoltDB.
type SnapshotStore struct {
	db *bolt.DB
	mu sync.RWMutex

	// Memory-only fallback when no cache directory is configured
	mem map[string][]byte
}

// Open opens (or creates) the snapshot database under dir. An empty dir
// yields a memory-only store.
func Open(dir string) (*SnapshotStore, error) {
	if dir == "" {
		return &SnapshotStore{mem: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "catalens.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSnapshots)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SnapshotStore{db: db, mem: make(map[string][]byte)}, nil
}

func (s *SnapshotStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DigestFile returns the snapshot key for the source file at path
func DigestFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// GetSnapshot returns the cached records for digest, if present
func (s *SnapshotStore) GetSnapshot(digest string) ([]domain.CatalogRecord, bool) {
	s.mu.RLock()
	data, ok := s.mem[digest]
	s.mu.RUnlock()

	if !ok && s.db != nil {
		s.db.View(func(tx *bolt.Tx) error {
			if v := tx.Bucket(bucketSnapshots).Get([]byte(digest)); v != nil {
				data = make([]byte, len(v))
				copy(data, v)
			}
			return nil
		})
	}
	if data == nil {
		return nil, false
	}

	var records []domain.CatalogRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, false
	}
	return records, true
}

// SaveSnapshot stores the enriched records under digest
func (s *SnapshotStore) SaveSnapshot(digest string, records []domain.CatalogRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.mem[digest] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSnapshots).Put([]byte(digest), data)
	})
}

// Invalidate drops every snapshot
func (s *SnapshotStore) Invalidate() {
	s.mu.Lock()
	s.mem = make(map[string][]byte)
	s.mu.Unlock()

	if s.db == nil {
		return
	}
	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}
