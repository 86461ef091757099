package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Store is a flat string key-value store persisted across application runs.
//
// All operations are synchronous. A missing key is reported as absent via
// the boolean result, never as an error. Implementations must be safe for
// use from multiple goroutines.
type Store interface {
	// Get returns the value stored under key and true, or ("", false) when
	// the key is absent.
	Get(key string) (string, bool)

	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string) error

	// Close releases the underlying resources. The store must not be used
	// afterwards.
	Close() error
}
