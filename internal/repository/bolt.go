package repository

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var bucketSettings = []byte("settings")

// BoltSettings stores settings in a local bbolt file.
type BoltSettings struct {
	db *bbolt.DB
}

// NewBoltSettings opens (or creates) the database at path.
func NewBoltSettings(path string) (*BoltSettings, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSettings)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create settings bucket: %w", err)
	}

	return &BoltSettings{db: db}, nil
}

// Get returns a copy of the value stored under key.
func (s *BoltSettings) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return ErrSettingNotFound
		}
		v := bucket.Get([]byte(key))
		if v == nil {
			return ErrSettingNotFound
		}
		value = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put stores value under key, replacing any previous value.
func (s *BoltSettings) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketSettings)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), value)
	})
}

// Close releases the database file. It is safe to call more than once.
func (s *BoltSettings) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
