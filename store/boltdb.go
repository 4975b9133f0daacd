// Package store persists processed document results locally so the search
// surface can rank chunks without reprocessing.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	bolt "go.etcd.io/bbolt"

	"lexchunk/pipeline"
)

var documentsBucket = []byte("documents")

// BoltStore keeps one JSON-encoded pipeline.Result per document id.
type BoltStore struct {
	DBPath string
	db     *bolt.DB
	mu     sync.RWMutex
}

// Init opens (creating if needed) the database and its bucket.
func (s *BoltStore) Init() error {
	dbDir := filepath.Dir(s.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for BoltDB: %w", err)
	}

	db, err := bolt.Open(s.DBPath, 0600, nil)
	if err != nil {
		return fmt.Errorf("failed to open BoltDB: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(documentsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	s.db = db
	return nil
}

// SaveResult stores a processing result keyed by document id, replacing any
// earlier run for the same document.
func (s *BoltStore) SaveResult(result *pipeline.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(documentsBucket).Put([]byte(result.DocumentID), data)
	})
}

// GetResult returns the stored result for a document, or nil when absent.
func (s *BoltStore) GetResult(documentID string) (*pipeline.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result *pipeline.Result
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(documentsBucket).Get([]byte(documentID))
		if data == nil {
			return nil
		}
		result = &pipeline.Result{}
		return json.Unmarshal(data, result)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load result for %s: %w", documentID, err)
	}
	return result, nil
}

// AllChunks returns the chunks of every successfully processed document, in
// stable document-id order.
func (s *BoltStore) AllChunks() ([]pipeline.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var chunks []pipeline.Chunk
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(documentsBucket).ForEach(func(_, data []byte) error {
			var result pipeline.Result
			if err := json.Unmarshal(data, &result); err != nil {
				return err
			}
			if result.Success {
				chunks = append(chunks, result.Chunks...)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan documents: %w", err)
	}
	return chunks, nil
}

// DeleteResult removes a document's stored result.
func (s *BoltStore) DeleteResult(documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(documentsBucket).Delete([]byte(documentID))
	})
}

func (s *BoltStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
