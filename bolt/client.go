// Package bolt implements the local organization store on boltdb.
package bolt

import (
	"context"
	"time"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// Client is a client for the boltdb data store.
type Client struct {
	Path string

	db  *bbolt.DB
	log *zap.Logger
}

// NewClient returns an unopened client for the store at path.
func NewClient(path string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		Path: path,
		log:  log,
	}
}

// Open opens the database file and creates the initial buckets if they do
// not exist.
func (c *Client) Open(ctx context.Context) error {
	db, err := bbolt.Open(c.Path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return err
	}
	c.db = db

	return c.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(organizationBucket); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(organizationIndex); err != nil {
			return err
		}
		return nil
	})
}

// Close closes the database file.
func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
