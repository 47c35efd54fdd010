package storage

import "errors"

// ErrNotLoaded is returned when a store is used before Init or Load.
var ErrNotLoaded = errors.New("storage not loaded")

// Provider is a synchronous key/value blob store. Each key holds one whole
// collection, read and written in full. Writes to different keys are not
// atomic with each other.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Read returns the blob stored under key, or nil with no error when the
	// key has never been written.
	Read(key string) ([]byte, error)
	// Write replaces the blob stored under key.
	Write(key string, data []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	// Keys lists the stored keys in lexical order.
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}

// Migrator is implemented by stores with a versioned SQL schema.
type Migrator interface {
	// Migrate applies pending migrations and returns how many ran.
	Migrate(logFn func(string)) (int, error)
	// SchemaVersion reports the applied and the latest known versions.
	SchemaVersion() (current, latest int, err error)
}
