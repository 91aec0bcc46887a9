package charm_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/KirkDiggler/charm-tracker/internal/entities"
	"github.com/KirkDiggler/charm-tracker/internal/errors"
	"github.com/KirkDiggler/charm-tracker/internal/orchestrators/charm"
	"github.com/KirkDiggler/charm-tracker/internal/pkg/idgen"
	charmsnapshot "github.com/KirkDiggler/charm-tracker/internal/repositories/charm_snapshot"
	charmsnapshotmock "github.com/KirkDiggler/charm-tracker/internal/repositories/charm_snapshot/mock"
	"github.com/KirkDiggler/charm-tracker/internal/testutils"
	"github.com/KirkDiggler/charm-tracker/internal/testutils/mocks"
)

type PersistenceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *charmsnapshotmock.MockRepository
	logs     *observer.ObservedLogs
	logger   *zap.Logger
	ctx      context.Context
}

func (s *PersistenceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = charmsnapshotmock.NewMockRepository(s.ctrl)
	core, logs := observer.New(zap.DebugLevel)
	s.logger = zap.New(core)
	s.logs = logs
	s.ctx = context.Background()
}

func (s *PersistenceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PersistenceTestSuite) newOrchestrator() charm.Service {
	o, err := charm.NewOrchestrator(s.ctx, &charm.Config{
		Repository:  s.mockRepo,
		IDGenerator: idgen.NewSequential(),
		Logger:      s.logger,
	})
	s.Require().NoError(err)
	return o
}

func (s *PersistenceTestSuite) expectEmptyLoad() {
	mocks.ExpectEmptySnapshot(s.mockRepo, charmsnapshot.DefaultKey)
}

func (s *PersistenceTestSuite) TestLoadSeedsIDGenerator() {
	mocks.ExpectSnapshot(s.mockRepo, charmsnapshot.DefaultKey, testutils.CreateTestInventory(38))
	s.mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input charmsnapshot.SaveInput) (*charmsnapshot.SaveOutput, error) {
			s.Len(input.Charms, 5)
			s.Equal(charmsnapshot.DefaultKey, input.Key)
			return &charmsnapshot.SaveOutput{Bytes: 10}, nil
		})

	o := s.newOrchestrator()

	out, err := o.Add(s.ctx, &charm.AddInput{Skills: entities.Skills{{Name: "Super Crit", Level: 1}}})
	s.Require().NoError(err)
	s.Equal(int64(42), out.Charm.ID)
}

func (s *PersistenceTestSuite) TestLoadDropsDuplicateIDs() {
	s.mockRepo.EXPECT().
		Load(gomock.Any(), gomock.Any()).
		Return(&charmsnapshot.LoadOutput{Charms: []entities.Charm{
			{ID: 5, Skills: entities.Skills{{Name: "Attack", Level: 1}}},
			{ID: 5, Skills: entities.Skills{{Name: "Guard", Level: 1}}},
		}}, nil)

	o := s.newOrchestrator()

	out, err := o.List(s.ctx, &charm.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Charms, 1)
	s.Equal("Attack", out.Charms[0].Skills[0].Name)
	s.Equal(1, s.logs.FilterMessage("dropping charm with duplicate id").Len())
}

func (s *PersistenceTestSuite) TestLoadFailureStartsEmpty() {
	s.mockRepo.EXPECT().
		Load(gomock.Any(), gomock.Any()).
		Return(nil, errors.Wrap(stderrors.New("connection refused"), "failed to get snapshot"))

	o := s.newOrchestrator()

	out, err := o.List(s.ctx, &charm.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Charms)
	s.Equal(1, s.logs.FilterMessage("failed to load snapshot, starting empty").Len())
}

func (s *PersistenceTestSuite) TestCorruptLoadLogsWarning() {
	s.mockRepo.EXPECT().
		Load(gomock.Any(), gomock.Any()).
		Return(nil, errors.DataLoss("snapshot payload is corrupt").WithMeta("key", "charmsData"))

	s.newOrchestrator()

	entries := s.logs.FilterMessage("snapshot is corrupt, starting empty").All()
	s.Require().Len(entries, 1)
	s.Equal(zap.WarnLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	s.Equal("DATA_LOSS", fields["code"])
	s.Equal(charmsnapshot.DefaultKey, fields["key"])
	s.Equal(map[string]any{"key": "charmsData"}, fields["meta"])
}

func (s *PersistenceTestSuite) TestSaveFailureKeepsMutation() {
	s.expectEmptyLoad()
	s.mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("disk full"))

	o := s.newOrchestrator()

	out, err := o.Add(s.ctx, &charm.AddInput{Skills: entities.Skills{{Name: "Attack", Level: 1}}})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Require().NotNil(out)
	s.Equal(int64(1), out.Charm.ID)

	list, err := o.List(s.ctx, &charm.ListInput{})
	s.Require().NoError(err)
	s.Len(list.Charms, 1)

	entries := s.logs.FilterMessage("failed to persist charms").All()
	s.Require().Len(entries, 1)
	s.Equal("INTERNAL", entries[0].ContextMap()["code"])
	s.EqualValues(1, entries[0].ContextMap()["count"])
}

func (s *PersistenceTestSuite) TestNoFlushWithoutChange() {
	s.expectEmptyLoad()
	// no Save expectation: any flush fails the test

	o := s.newOrchestrator()

	del, err := o.Delete(s.ctx, &charm.DeleteInput{ID: 9})
	s.Require().NoError(err)
	s.False(del.Deleted)

	_, err = o.BeginEdit(s.ctx, &charm.BeginEditInput{ID: 9})
	s.Require().NoError(err)

	_, err = o.Add(s.ctx, &charm.AddInput{})
	s.True(errors.IsInvalidArgument(err))

	imported, err := o.ImportText(s.ctx, &charm.ImportTextInput{Text: "bad line"})
	s.Require().NoError(err)
	s.Equal(0, imported.Imported)
	s.Equal(1, imported.Skipped)
}

func (s *PersistenceTestSuite) TestBulkImportFlushesOnce() {
	s.expectEmptyLoad()
	var saved []entities.Charm
	mocks.ExpectSaveCount(s.mockRepo, 1, &saved)

	o := s.newOrchestrator()

	out, err := o.ImportText(s.ctx, &charm.ImportTextInput{
		Text: "Attack,1,,,,,0,0,0,0,0,0\nGuard,1,,,,,0,0,0,0,0,0\nSuper Crit,1,,,,,0,0,0,0,0,0",
	})
	s.Require().NoError(err)
	s.Equal(3, out.Imported)
	s.Equal(out.Charms, saved)
}

func TestPersistenceTestSuite(t *testing.T) {
	suite.Run(t, new(PersistenceTestSuite))
}
