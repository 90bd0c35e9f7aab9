// Package store connects to the data store and manages the persisted step
// count and daily history
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/stepsquad/stepsquad/internal/apperr"
	"github.com/stepsquad/stepsquad/internal/models"
	"github.com/stepsquad/stepsquad/internal/timeutil"
)

const (
	kvBucket  = "kv"
	dayBucket = "days"
)

var errAlreadyRunning = &apperr.Error{
	Message: "is stepsquad already running? Only one instance can be active at a time",
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) GetItem(key string) (value string, ok bool, err error) {
	err = c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(kvBucket)).Get([]byte(key))
		if v == nil {
			return nil
		}

		value, ok = string(v), true

		return nil
	})

	return value, ok, err
}

func (c *Client) SetItem(key, value string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(kvBucket)).Put([]byte(key), []byte(value))
	})
}

func (c *Client) RemoveItem(key string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(kvBucket)).Delete([]byte(key))
	})
}

func (c *Client) UpdateDay(day *models.Day) error {
	key := timeutil.DayKey(day.Date)

	value, err := json.Marshal(day)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(dayBucket)).Put(key, value)
	})
}

func (c *Client) GetDay(t time.Time) (*models.Day, error) {
	var day *models.Day

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(dayBucket)).Get(timeutil.DayKey(t))
		if len(v) == 0 {
			return nil
		}

		day = &models.Day{}

		return json.Unmarshal(v, day)
	})

	return day, err
}

func (c *Client) GetDays(startTime, endTime time.Time) ([]*models.Day, error) {
	var days []*models.Day

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(dayBucket)).Cursor()
		min := timeutil.DayKey(startTime)
		max := timeutil.DayKey(endTime)

		if startTime.IsZero() {
			min = nil
		}

		var k, v []byte

		if min == nil {
			k, v = cur.First()
		} else {
			k, v = cur.Seek(min)
		}

		for ; k != nil && bytes.Compare(k, max) <= 0; k, v = cur.Next() {
			day := &models.Day{}

			err := json.Unmarshal(v, day)
			if err != nil {
				return err
			}

			days = append(days, day)
		}

		return nil
	})

	return days, err
}

func (c *Client) DeleteDays(days []time.Time) error {
	return c.Update(func(tx *bolt.Tx) error {
		for i := range days {
			err := tx.Bucket([]byte(dayBucket)).Delete(timeutil.DayKey(days[i]))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		// a second process holding the file lock surfaces as a timeout
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}
	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(kvBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(dayBucket))

		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}

// IsAlreadyRunning reports whether err means the database is locked by
// another process.
func IsAlreadyRunning(err error) bool {
	return errors.Is(err, errAlreadyRunning)
}
