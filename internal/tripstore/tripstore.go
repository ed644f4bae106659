// Package tripstore persists the id of the user's active trip in a
// local bbolt file, so a returning user lands on their trip instead of
// the creation wizard. It stores exactly one value and nothing else.
package tripstore

import (
	"fmt"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketName = []byte("planner")
	tripIDKey  = []byte("active_trip_id")
)

// Store is a bbolt-backed single-value store for the active trip id.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the bbolt file at path and ensures the
// bucket exists. Callers must Close the store when done.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("tripstore.Open: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("tripstore.Open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save records id as the active trip, replacing any previous value.
func (s *Store) Save(id uuid.UUID) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(tripIDKey, []byte(id.String()))
	})
	if err != nil {
		return fmt.Errorf("tripstore.Save: %w", err)
	}
	return nil
}

// Get returns the active trip id. The bool result is false when no trip
// has been saved yet.
func (s *Store) Get() (uuid.UUID, bool, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get(tripIDKey); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return uuid.UUID{}, false, fmt.Errorf("tripstore.Get: %w", err)
	}
	if raw == nil {
		return uuid.UUID{}, false, nil
	}
	id, err := uuid.ParseBytes(raw)
	if err != nil {
		return uuid.UUID{}, false, fmt.Errorf("tripstore.Get: corrupt trip id: %w", err)
	}
	return id, true, nil
}

// Clear forgets the active trip. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete(tripIDKey)
	})
	if err != nil {
		return fmt.Errorf("tripstore.Clear: %w", err)
	}
	return nil
}
