package charmsnapshot

import (
	"encoding/json"

	"github.com/KirkDiggler/charm-tracker/internal/entities"
	"github.com/KirkDiggler/charm-tracker/internal/errors"
)

const errKeyEmpty = "snapshot key cannot be empty"

// encode serializes charms as a JSON array. A nil list encodes as [] so an
// emptied store is distinguishable from a missing one.
func encode(charms []entities.Charm) ([]byte, error) {
	if charms == nil {
		charms = []entities.Charm{}
	}
	data, err := json.Marshal(charms)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal snapshot")
	}
	return data, nil
}

// decode reads a JSON array of charms. Unknown fields, such as an edit flag
// written by older clients, are ignored.
func decode(key string, data []byte) ([]entities.Charm, error) {
	var charms []entities.Charm
	if err := json.Unmarshal(data, &charms); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "snapshot payload is corrupt").
			WithMeta("key", key)
	}
	return charms, nil
}
