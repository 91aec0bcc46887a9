package charmsnapshot_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/charm-tracker/internal/entities"
	"github.com/KirkDiggler/charm-tracker/internal/errors"
	"github.com/KirkDiggler/charm-tracker/internal/pkg/clock"
	charmsnapshot "github.com/KirkDiggler/charm-tracker/internal/repositories/charm_snapshot"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	path string
	ctx  context.Context
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "charms.db")
	s.ctx = context.Background()
}

func (s *SQLiteRepositoryTestSuite) open() *charmsnapshot.SQLiteRepository {
	repo, err := charmsnapshot.NewSQLite(s.ctx, &charmsnapshot.SQLiteConfig{
		Path:  s.path,
		Clock: &clock.Fixed{At: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
	})
	s.Require().NoError(err)
	return repo
}

func (s *SQLiteRepositoryTestSuite) TestConfigValidation() {
	_, err := charmsnapshot.NewSQLite(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = charmsnapshot.NewSQLite(s.ctx, &charmsnapshot.SQLiteConfig{Path: "  "})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteRepositoryTestSuite) TestSnapshotSurvivesReopen() {
	charms := []entities.Charm{
		{ID: 11, Skills: entities.Skills{{Name: "Super Crit", Level: 1}}, Slots: entities.Slots{3, 0, 0, 2, 0, 0}},
	}

	repo := s.open()
	_, err := repo.Save(s.ctx, charmsnapshot.SaveInput{Key: charmsnapshot.DefaultKey, Charms: charms})
	s.Require().NoError(err)
	s.Require().NoError(repo.Close())

	reopened := s.open()
	defer func() { _ = reopened.Close() }()

	out, err := reopened.Load(s.ctx, charmsnapshot.LoadInput{Key: charmsnapshot.DefaultKey})
	s.Require().NoError(err)
	s.Equal(charms, out.Charms)
}

func (s *SQLiteRepositoryTestSuite) TestInMemoryDatabase() {
	repo, err := charmsnapshot.NewSQLite(s.ctx, &charmsnapshot.SQLiteConfig{Path: ":memory:"})
	s.Require().NoError(err)
	defer func() { _ = repo.Close() }()

	_, err = repo.Save(s.ctx, charmsnapshot.SaveInput{Key: "mem", Charms: []entities.Charm{{ID: 1}}})
	s.Require().NoError(err)

	out, err := repo.Load(s.ctx, charmsnapshot.LoadInput{Key: "mem"})
	s.Require().NoError(err)
	s.Len(out.Charms, 1)
}

func (s *SQLiteRepositoryTestSuite) TestCloseIsSafeOnNil() {
	var repo *charmsnapshot.SQLiteRepository
	s.NoError(repo.Close())
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}
