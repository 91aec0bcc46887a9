// Package charm implements the charm store: the authoritative charm list,
// id assignment, the single edit slot, and the snapshot flush after each
// mutation.
package charm

//go:generate mockgen -destination=mock/mock_service.go -package=charmmock github.com/KirkDiggler/charm-tracker/internal/orchestrators/charm Service

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/charm-tracker/internal/charmtext"
	"github.com/KirkDiggler/charm-tracker/internal/entities"
	"github.com/KirkDiggler/charm-tracker/internal/errors"
	"github.com/KirkDiggler/charm-tracker/internal/filter"
	"github.com/KirkDiggler/charm-tracker/internal/logging"
	"github.com/KirkDiggler/charm-tracker/internal/pkg/idgen"
	charmsnapshot "github.com/KirkDiggler/charm-tracker/internal/repositories/charm_snapshot"
)

const errNoNamedSkill = "at least one skill required"

// Service defines the interface for charm store operations
type Service interface {
	// Mutations; each one that changes the list flushes a snapshot
	Add(ctx context.Context, input *AddInput) (*AddOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
	CommitEdit(ctx context.Context, input *CommitEditInput) (*CommitEditOutput, error)
	ClearAll(ctx context.Context, input *ClearAllInput) (*ClearAllOutput, error)
	BulkImport(ctx context.Context, input *BulkImportInput) (*BulkImportOutput, error)
	ImportText(ctx context.Context, input *ImportTextInput) (*ImportTextOutput, error)

	// Edit state is view state and is never flushed
	BeginEdit(ctx context.Context, input *BeginEditInput) (*BeginEditOutput, error)
	CancelEdit(ctx context.Context, input *CancelEditInput) (*CancelEditOutput, error)
	Editing(ctx context.Context, input *EditingInput) (*EditingOutput, error)

	// Reads
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	Find(ctx context.Context, input *FindInput) (*FindOutput, error)
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)
}

// Config holds the dependencies for the charm orchestrator
type Config struct {
	Repository  charmsnapshot.Repository
	IDGenerator idgen.Generator
	// Key is the snapshot key; defaults to charmsnapshot.DefaultKey
	Key string
	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	repo   charmsnapshot.Repository
	idGen  idgen.Generator
	key    string
	logger *zap.Logger

	mu        sync.Mutex
	charms    []entities.Charm
	editingID *int64
}

// NewOrchestrator creates the store and loads the persisted snapshot.
// A missing or unreadable snapshot starts the store empty.
func NewOrchestrator(ctx context.Context, cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		repo:   cfg.Repository,
		idGen:  cfg.IDGenerator,
		key:    cfg.Key,
		logger: cfg.Logger,
	}
	if o.key == "" {
		o.key = charmsnapshot.DefaultKey
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	o.load(ctx)

	return o, nil
}

func (o *orchestrator) load(ctx context.Context) {
	out, err := o.repo.Load(ctx, charmsnapshot.LoadInput{Key: o.key})
	switch {
	case err == nil:
	case errors.IsNotFound(err):
		o.logger.Info("no snapshot found, starting empty", zap.String("key", o.key))
		return
	case errors.IsDataLoss(err):
		o.logger.Warn("snapshot is corrupt, starting empty", o.errorFields(err)...)
		return
	default:
		o.logger.Warn("failed to load snapshot, starting empty", o.errorFields(err)...)
		return
	}

	o.charms = make([]entities.Charm, 0, len(out.Charms))
	seen := make(map[int64]struct{}, len(out.Charms))
	for _, c := range out.Charms {
		if _, dup := seen[c.ID]; dup {
			o.logger.Warn("dropping charm with duplicate id", zap.Int64("id", c.ID))
			continue
		}
		seen[c.ID] = struct{}{}

		c.Skills = c.Skills.Normalize()
		o.charms = append(o.charms, c)
		o.idGen.Observe(c.ID)
	}

	o.logger.Debug("snapshot loaded", zap.String("key", o.key), zap.Int("count", len(o.charms)))
}

// persist flushes the whole list. Callers hold o.mu.
func (o *orchestrator) persist(ctx context.Context) error {
	out, err := o.repo.Save(ctx, charmsnapshot.SaveInput{
		Key:    o.key,
		Charms: o.charms,
	})
	if err != nil {
		o.logger.Error("failed to persist charms",
			append(o.errorFields(err), zap.Int("count", len(o.charms)))...)
		return errors.Persistence(err, "failed to persist charms")
	}

	o.logger.Debug("charms persisted",
		zap.String("key", o.key), zap.Int("count", len(o.charms)), zap.Int("bytes", out.Bytes))
	return nil
}

// errorFields tags err's fields with the snapshot key
func (o *orchestrator) errorFields(err error) []zap.Field {
	return append([]zap.Field{zap.String("key", o.key)}, logging.ErrorFields(err)...)
}

func (o *orchestrator) indexOf(id int64) int {
	for i := range o.charms {
		if o.charms[i].ID == id {
			return i
		}
	}
	return -1
}

func (o *orchestrator) isEditing(id int64) bool {
	return o.editingID != nil && *o.editingID == id
}

func (o *orchestrator) snapshot() []entities.Charm {
	out := make([]entities.Charm, len(o.charms))
	copy(out, o.charms)
	return out
}

func requireNamedSkill(skills entities.Skills) error {
	if skills.HasNamed() {
		return nil
	}
	return errors.NewValidationBuilder().
		Field("skills", errNoNamedSkill).
		Build()
}

// Add appends a new charm with a fresh id
func (o *orchestrator) Add(ctx context.Context, input *AddInput) (*AddOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	skills := input.Skills.Normalize()
	if err := requireNamedSkill(skills); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	c := entities.Charm{
		ID:     o.idGen.Next(),
		Skills: skills,
		Slots:  input.Slots,
	}
	o.charms = append(o.charms, c)

	o.logger.Info("charm added", zap.Int64("id", c.ID), zap.Int("count", len(o.charms)))

	return &AddOutput{Charm: c}, o.persist(ctx)
}

// Delete removes a charm; an unknown id changes nothing
func (o *orchestrator) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	idx := o.indexOf(input.ID)
	if idx < 0 {
		o.logger.Debug("delete of unknown charm ignored", zap.Int64("id", input.ID))
		return &DeleteOutput{Deleted: false}, nil
	}

	o.charms = append(o.charms[:idx], o.charms[idx+1:]...)
	if o.isEditing(input.ID) {
		o.editingID = nil
	}

	o.logger.Info("charm deleted", zap.Int64("id", input.ID), zap.Int("count", len(o.charms)))

	return &DeleteOutput{Deleted: true}, o.persist(ctx)
}

// BeginEdit moves the single edit slot to the target charm
func (o *orchestrator) BeginEdit(_ context.Context, input *BeginEditInput) (*BeginEditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	idx := o.indexOf(input.ID)
	if idx < 0 {
		return &BeginEditOutput{Editing: false}, nil
	}

	id := input.ID
	o.editingID = &id

	return &BeginEditOutput{Editing: true, Charm: o.charms[idx]}, nil
}

// CancelEdit clears the edit slot when it holds the target charm
func (o *orchestrator) CancelEdit(_ context.Context, input *CancelEditInput) (*CancelEditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.isEditing(input.ID) {
		return &CancelEditOutput{Canceled: false}, nil
	}

	o.editingID = nil
	return &CancelEditOutput{Canceled: true}, nil
}

// CommitEdit overwrites a charm's skills and slots and leaves edit state
func (o *orchestrator) CommitEdit(ctx context.Context, input *CommitEditInput) (*CommitEditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	skills := input.Skills.Normalize()
	if err := requireNamedSkill(skills); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	idx := o.indexOf(input.ID)
	if idx < 0 {
		return nil, errors.NotFoundf("charm %d not found", input.ID)
	}

	o.charms[idx].Skills = skills
	o.charms[idx].Slots = input.Slots
	if o.isEditing(input.ID) {
		o.editingID = nil
	}

	o.logger.Info("charm updated", zap.Int64("id", input.ID))

	return &CommitEditOutput{Charm: o.charms[idx]}, o.persist(ctx)
}

// ClearAll empties the store
func (o *orchestrator) ClearAll(ctx context.Context, _ *ClearAllInput) (*ClearAllOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	removed := len(o.charms)
	o.charms = nil
	o.editingID = nil

	o.logger.Info("store cleared", zap.Int("removed", removed))

	return &ClearAllOutput{Removed: removed}, o.persist(ctx)
}

// validateRecord checks the shape rules a record must meet before import
func validateRecord(rec charmtext.Record) error {
	vb := errors.NewValidationBuilder()

	for i, s := range rec.Skills {
		if s.Name == "" && s.Level != 0 {
			vb.Fieldf("skills", "skill %d has a level but no name", i+1)
		}
		if s.Level < 0 {
			vb.Fieldf("skills", "skill %d has a negative level", i+1)
		}
	}
	for i, capacity := range rec.Slots {
		if capacity < 0 {
			vb.Fieldf("slots", "slot %d has a negative capacity", i+1)
		}
	}

	return vb.Build()
}

// BulkImport appends every valid record with a fresh id and flushes once
func (o *orchestrator) BulkImport(ctx context.Context, input *BulkImportInput) (*BulkImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return o.bulkImport(ctx, input.Records)
}

func (o *orchestrator) bulkImport(ctx context.Context, records []charmtext.Record) (*BulkImportOutput, error) {
	out := &BulkImportOutput{}

	for _, rec := range records {
		if err := validateRecord(rec); err != nil {
			out.Skipped++
			out.Rejected = append(out.Rejected, charmtext.LineError{Line: rec.Line, Err: err})
			continue
		}

		c := entities.Charm{
			ID:     o.idGen.Next(),
			Skills: rec.Skills.Normalize(),
			Slots:  rec.Slots,
		}
		o.charms = append(o.charms, c)
		out.Charms = append(out.Charms, c)
	}
	out.Imported = len(out.Charms)

	o.logger.Info("charms imported",
		zap.Int("imported", out.Imported), zap.Int("skipped", out.Skipped), zap.Int("count", len(o.charms)))

	if out.Imported == 0 {
		return out, nil
	}
	return out, o.persist(ctx)
}

// ImportText parses bulk text and imports the records it yields
func (o *orchestrator) ImportText(ctx context.Context, input *ImportTextInput) (*ImportTextOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	records, lineErrs := charmtext.Parse(input.Text)

	o.mu.Lock()
	defer o.mu.Unlock()

	imported, err := o.bulkImport(ctx, records)

	rejected := append(lineErrs, imported.Rejected...)
	sort.SliceStable(rejected, func(i, j int) bool {
		return rejected[i].Line < rejected[j].Line
	})

	return &ImportTextOutput{
		Charms:   imported.Charms,
		Imported: imported.Imported,
		Skipped:  len(lineErrs) + imported.Skipped,
		Rejected: rejected,
	}, err
}

// List returns every charm in creation order
func (o *orchestrator) List(_ context.Context, _ *ListInput) (*ListOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return &ListOutput{Charms: o.snapshot()}, nil
}

// Get returns a single charm
func (o *orchestrator) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	idx := o.indexOf(input.ID)
	if idx < 0 {
		return nil, errors.NotFoundf("charm %d not found", input.ID)
	}

	return &GetOutput{Charm: o.charms[idx], Editing: o.isEditing(input.ID)}, nil
}

// Editing reports which charm, if any, is in edit state
func (o *orchestrator) Editing(_ context.Context, _ *EditingInput) (*EditingOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.editingID == nil {
		return &EditingOutput{}, nil
	}
	return &EditingOutput{ID: *o.editingID, Active: true}, nil
}

// Find runs the filter engine over a copy of the store
func (o *orchestrator) Find(_ context.Context, input *FindInput) (*FindOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	all := o.snapshot()
	o.mu.Unlock()

	matched := filter.Filter(all, input.Spec)
	if input.NewestFirst {
		reversed := make([]entities.Charm, len(matched))
		for i, c := range matched {
			reversed[len(matched)-1-i] = c
		}
		matched = reversed
	}

	return &FindOutput{Charms: matched, Total: len(all)}, nil
}

// Export renders the store as bulk text
func (o *orchestrator) Export(_ context.Context, _ *ExportInput) (*ExportOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return &ExportOutput{
		Text:  charmtext.Format(o.charms),
		Count: len(o.charms),
	}, nil
}
