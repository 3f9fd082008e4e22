// Package kv provides small synchronous key-value stores used for persistence.
// Every backend stores string values under string keys; callers own the encoding.
package kv

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("kv store closed")
	// ErrUnknownDriver is returned by Open for an unsupported driver name.
	ErrUnknownDriver = errors.New("unknown kv driver")
)

// Driver names accepted by Open.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Drivers lists every supported driver.
var Drivers = []string{DriverFile, DriverSQLite, DriverMemory}

// Store is a synchronous key-value store.
type Store interface {
	// Get returns the value for key. The bool is false when the key is absent.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Close releases resources held by the store.
	Close() error
}

// Open creates the store selected by driver. The path is ignored by the memory driver.
func Open(driver, path string) (Store, error) {
	switch strings.ToLower(driver) {
	case DriverFile:
		return NewFile(path), nil
	case DriverSQLite:
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
}
