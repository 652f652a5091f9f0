// Package storage provides the key/value stores game state is persisted
// in. Values are opaque blobs; callers encode and decode them.
package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

// Keys used by the game.
const (
	ScorecardKey  = "vuezee-scorecard"
	HighScoresKey = "vuezee-highscores"
)

// ErrNotFound is returned by Load when no value is stored under a key.
var ErrNotFound = errors.New("storage: key not found")

// Store persists blobs by key. Saves are last-write-wins.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Close() error
}

// Driver names accepted by Open.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Open returns the store for a configured driver. path is a directory for
// the file driver and a database file for sqlite; memory ignores it.
func Open(driver, path string) (Store, error) {
	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile:
		f, err := NewFile(path)
		if err != nil {
			return nil, err
		}
		return f, nil
	case DriverSQLite:
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{0,127}$`)

// ValidateKey rejects keys that are empty or could escape a directory.
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return nil
}
