// Package charmsnapshot persists the whole charm list as one snapshot blob
// under a single key.
package charmsnapshot

//go:generate mockgen -destination=mock/mock_repository.go -package=charmsnapshotmock github.com/KirkDiggler/charm-tracker/internal/repositories/charm_snapshot Repository

import (
	"context"

	"github.com/KirkDiggler/charm-tracker/internal/entities"
)

// DefaultKey is the key the snapshot is stored under unless configured otherwise
const DefaultKey = "charmsData"

// Repository defines snapshot storage operations
type Repository interface {
	// Load reads the snapshot stored under a key
	// Returns errors.NotFound when nothing is stored under the key
	// Returns errors.DataLoss when the stored payload cannot be decoded
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Save replaces the snapshot stored under a key
	// Returns errors.InvalidArgument for an empty key
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// LoadInput defines the input for loading a snapshot
type LoadInput struct {
	Key string
}

// LoadOutput defines the output for loading a snapshot
type LoadOutput struct {
	Charms []entities.Charm
}

// SaveInput defines the input for saving a snapshot
type SaveInput struct {
	Key    string
	Charms []entities.Charm
}

// SaveOutput defines the output for saving a snapshot
type SaveOutput struct {
	// Bytes is the size of the encoded payload
	Bytes int
}
