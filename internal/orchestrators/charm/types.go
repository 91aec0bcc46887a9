package charm

import (
	"github.com/KirkDiggler/charm-tracker/internal/charmtext"
	"github.com/KirkDiggler/charm-tracker/internal/entities"
	"github.com/KirkDiggler/charm-tracker/internal/filter"
)

// AddInput defines the request for adding a charm
type AddInput struct {
	Skills entities.Skills
	Slots  entities.Slots
}

// AddOutput defines the response for adding a charm
type AddOutput struct {
	Charm entities.Charm
}

// DeleteInput defines the request for deleting a charm
type DeleteInput struct {
	ID int64
}

// DeleteOutput defines the response for deleting a charm
type DeleteOutput struct {
	// Deleted is false when no charm had the id
	Deleted bool
}

// BeginEditInput defines the request for putting a charm into edit state
type BeginEditInput struct {
	ID int64
}

// BeginEditOutput defines the response for putting a charm into edit state
type BeginEditOutput struct {
	// Editing is false when the id was not found and nothing changed
	Editing bool
	Charm   entities.Charm
}

// CancelEditInput defines the request for leaving edit state
type CancelEditInput struct {
	ID int64
}

// CancelEditOutput defines the response for leaving edit state
type CancelEditOutput struct {
	Canceled bool
}

// CommitEditInput defines the request for saving an edited charm
type CommitEditInput struct {
	ID     int64
	Skills entities.Skills
	Slots  entities.Slots
}

// CommitEditOutput defines the response for saving an edited charm
type CommitEditOutput struct {
	Charm entities.Charm
}

// ClearAllInput defines the request for emptying the store
type ClearAllInput struct{}

// ClearAllOutput defines the response for emptying the store
type ClearAllOutput struct {
	Removed int
}

// BulkImportInput defines the request for appending parsed records
type BulkImportInput struct {
	Records []charmtext.Record
}

// BulkImportOutput defines the response for a bulk import
type BulkImportOutput struct {
	Charms   []entities.Charm
	Imported int
	Skipped  int
	// Rejected explains each skipped record, in input order
	Rejected []charmtext.LineError
}

// ImportTextInput defines the request for importing bulk text
type ImportTextInput struct {
	Text string
}

// ImportTextOutput defines the response for importing bulk text.
// Skipped counts lines rejected by the parser and by record validation.
type ImportTextOutput struct {
	Charms   []entities.Charm
	Imported int
	Skipped  int
	Rejected []charmtext.LineError
}

// ListInput defines the request for reading the whole store
type ListInput struct{}

// ListOutput defines the response for reading the whole store
type ListOutput struct {
	Charms []entities.Charm
}

// GetInput defines the request for reading one charm
type GetInput struct {
	ID int64
}

// GetOutput defines the response for reading one charm
type GetOutput struct {
	Charm   entities.Charm
	Editing bool
}

// EditingInput defines the request for the current edit state
type EditingInput struct{}

// EditingOutput defines the response for the current edit state
type EditingOutput struct {
	ID     int64
	Active bool
}

// FindInput defines the request for a filtered read
type FindInput struct {
	Spec filter.Spec
	// NewestFirst reverses store order for display
	NewestFirst bool
}

// FindOutput defines the response for a filtered read
type FindOutput struct {
	Charms []entities.Charm
	// Total is the store size before filtering
	Total int
}

// ExportInput defines the request for exporting the store as bulk text
type ExportInput struct{}

// ExportOutput defines the response for exporting the store as bulk text
type ExportOutput struct {
	Text  string
	Count int
}
