package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/inovacc/findstar/internal/model"
	"go.etcd.io/bbolt"
)

const (
	boltFileName    = "stars.db"
	boltBucketStars = "stars" // key: username -> Star array JSON
)

// Bolt keeps every user's entry in a single bbolt file under the cache root.
// Transactions give the wholesale-replacement guarantee for free.
type Bolt struct {
	storage *bbolt.DB
}

// NewBolt opens (or creates) the bolt database under root.
func NewBolt(root string) (*Bolt, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", root, err)
	}

	instance, err := bbolt.Open(filepath.Join(root, boltFileName), 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketStars))

		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

func (b *Bolt) Exists(user string) bool {
	var found bool

	_ = b.storage.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket([]byte(boltBucketStars)).Get([]byte(user)) != nil

		return nil
	})

	return found
}

func (b *Bolt) Create(user string) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketStars))
		if bucket.Get([]byte(user)) != nil {
			return nil
		}

		return bucket.Put([]byte(user), []byte{})
	})
}

func (b *Bolt) Read(user string) ([]model.Star, error) {
	var data []byte

	if err := b.storage.View(func(tx *bbolt.Tx) error {
		if value := tx.Bucket([]byte(boltBucketStars)).Get([]byte(user)); value != nil {
			data = append([]byte(nil), value...)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, nil
	}

	var stars []model.Star
	if err := json.Unmarshal(data, &stars); err != nil {
		return nil, nil
	}

	return stars, nil
}

func (b *Bolt) Write(user string, stars []model.Star) error {
	data, err := json.Marshal(stars)
	if err != nil {
		return fmt.Errorf("failed to serialize stars for %s: %w", user, err)
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketStars)).Put([]byte(user), data)
	})
}

func (b *Bolt) Clear(user string) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketStars)).Put([]byte(user), []byte{})
	})
}

func (b *Bolt) Delete(user string) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketStars)).Delete([]byte(user))
	})
}

func (b *Bolt) Close() error {
	return b.storage.Close()
}
