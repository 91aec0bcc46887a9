// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/charm-tracker/internal/entities"
	"github.com/KirkDiggler/charm-tracker/internal/errors"
	charmsnapshot "github.com/KirkDiggler/charm-tracker/internal/repositories/charm_snapshot"
	charmsnapshotmock "github.com/KirkDiggler/charm-tracker/internal/repositories/charm_snapshot/mock"
)

// ExpectEmptySnapshot sets up a Load that finds nothing under key
func ExpectEmptySnapshot(mockRepo *charmsnapshotmock.MockRepository, key string) *gomock.Call {
	return mockRepo.EXPECT().
		Load(gomock.Any(), charmsnapshot.LoadInput{Key: key}).
		Return(nil, errors.NotFoundf("snapshot %s not found", key))
}

// ExpectSnapshot sets up a Load that returns charms under key
func ExpectSnapshot(mockRepo *charmsnapshotmock.MockRepository, key string, charms []entities.Charm) *gomock.Call {
	return mockRepo.EXPECT().
		Load(gomock.Any(), charmsnapshot.LoadInput{Key: key}).
		Return(&charmsnapshot.LoadOutput{Charms: charms}, nil)
}

// ExpectSaveCount sets up a Save that must happen exactly n times and
// records what was last saved into *last when last is not nil
func ExpectSaveCount(mockRepo *charmsnapshotmock.MockRepository, n int, last *[]entities.Charm) *gomock.Call {
	return mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input charmsnapshot.SaveInput) (*charmsnapshot.SaveOutput, error) {
			if last != nil {
				*last = append([]entities.Charm(nil), input.Charms...)
			}
			return &charmsnapshot.SaveOutput{}, nil
		}).
		Times(n)
}
