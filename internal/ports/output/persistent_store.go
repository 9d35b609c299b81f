package output

import "context"

// PersistentStore interface - Output port
// Durable key-value storage that survives reloads, the server-side analogue of
// the browser's per-origin storage. Values are opaque strings (serialized blobs).
// Writes are last-writer-wins with no transaction boundary.
type PersistentStore interface {
	// Get returns the value for key. found is false when the key was never set
	// or has been deleted. Returns an error only on storage access failure.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
