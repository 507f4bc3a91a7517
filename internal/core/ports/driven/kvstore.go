package driven

// KeyValueStore is the durable key-value storage boundary: string-keyed,
// string-valued, synchronous. Absence of a key is not an error.
// Backed by SQLite for on-disk persistence.
type KeyValueStore interface {
	// Get retrieves the value for key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores or replaces the value for key.
	Set(key, value string) error

	// Delete removes the key. Removing an absent key is a no-op.
	Delete(key string) error
}
