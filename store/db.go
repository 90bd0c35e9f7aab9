package store

import (
	"time"

	"github.com/stepsquad/stepsquad/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// GetItem retrieves a value from the key-value bucket. ok is false if the
	// key does not exist.
	GetItem(key string) (value string, ok bool, err error)
	// SetItem creates or overwrites a value in the key-value bucket
	SetItem(key, value string) error
	// RemoveItem deletes a key from the key-value bucket
	RemoveItem(key string) error
	// UpdateDay creates or overwrites the history row for a day
	UpdateDay(day *models.Day) error
	// GetDay returns the history row for the day containing t, or nil
	GetDay(t time.Time) (*models.Day, error)
	// GetDays returns the history rows between start and end inclusive
	GetDays(startTime, endTime time.Time) ([]*models.Day, error)
	// DeleteDays deletes the history rows of the specified days
	DeleteDays(days []time.Time) error
	// Close ends the database connection
	Close() error
}
