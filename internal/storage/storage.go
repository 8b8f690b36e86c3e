// internal/storage/storage.go
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Well-known storage keys
const (
	KeyCart     = "cart"
	KeyWishlist = "wishlist"
	KeyAuth     = "auth"
)

// SnapshotVersion tags every persisted envelope. Bump it together with a
// migration branch in DecodeSnapshot when a state shape changes.
const SnapshotVersion = 1

// ErrNotFound is returned when no value exists for a key
var ErrNotFound = errors.New("storage: key not found")

// Store is the durable local storage contract. Implementations must be safe
// for concurrent use.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Envelope wraps every persisted snapshot with a schema version so a shape
// change across releases degrades to the empty default instead of crashing
// hydration.
type Envelope struct {
	Version int             `json:"version"`
	SavedAt time.Time       `json:"saved_at"`
	Data    json.RawMessage `json:"data"`
}

// EncodeSnapshot marshals a state value into a versioned envelope
func EncodeSnapshot(state interface{}) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	return json.Marshal(Envelope{
		Version: SnapshotVersion,
		SavedAt: time.Now().UTC(),
		Data:    data,
	})
}

// DecodeSnapshot unmarshals a versioned envelope into state. It returns an
// error for unparseable payloads and for versions it does not understand;
// callers treat any error as "hydrate empty".
func DecodeSnapshot(raw []byte, state interface{}) error {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("corrupt snapshot: %w", err)
	}

	if env.Version != SnapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", env.Version)
	}

	if err := json.Unmarshal(env.Data, state); err != nil {
		return fmt.Errorf("corrupt snapshot payload: %w", err)
	}

	return nil
}
