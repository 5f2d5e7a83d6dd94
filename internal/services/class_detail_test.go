package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"academyscheduler/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDetailDirectory implements domain.ClassDetailRepository with
// controllable errors for the attach flow.
type fakeDetailDirectory struct {
	fakeClassDetailRepo
	existsErr error
	maxErr    error
	createErr error
	created   []*domain.ClassDetail
}

func newFakeDetailDirectory(details ...*domain.ClassDetail) *fakeDetailDirectory {
	return &fakeDetailDirectory{fakeClassDetailRepo: *newFakeClassDetailRepo(details...)}
}

func (f *fakeDetailDirectory) ExistsByClassAndModule(ctx context.Context, classID, moduleID string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.fakeClassDetailRepo.ExistsByClassAndModule(ctx, classID, moduleID)
}

func (f *fakeDetailDirectory) MaxSequence(ctx context.Context, classID string) (int, error) {
	if f.maxErr != nil {
		return 0, f.maxErr
	}
	return f.fakeClassDetailRepo.MaxSequence(ctx, classID)
}

func (f *fakeDetailDirectory) Create(ctx context.Context, d *domain.ClassDetail) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, d)
	return f.fakeClassDetailRepo.Create(ctx, d)
}

func TestClassDetailService_Attach(t *testing.T) {
	ctx := context.Background()
	existing := &domain.ClassDetail{ID: "cd-1", ClassID: "class-1", ModuleID: "mod-1", TrainerID: "tr-1", RoomID: "room-1", Sequence: 3}

	tests := []struct {
		name    string
		detail  *domain.ClassDetail
		setup   func(*fakeDetailDirectory)
		wantErr error
		wantSeq int
	}{
		{
			name:   "auto-assigns next sequence",
			detail: &domain.ClassDetail{ClassID: "class-1", ModuleID: "mod-2", TrainerID: "tr-1", RoomID: "room-1", PlannedHours: 25},
			wantSeq: 4,
		},
		{
			name:    "explicit sequence kept",
			detail:  &domain.ClassDetail{ClassID: "class-1", ModuleID: "mod-2", TrainerID: "tr-1", RoomID: "room-1", PlannedHours: 25, Sequence: 9},
			wantSeq: 9,
		},
		{
			name:    "first module of a class gets sequence one",
			detail:  &domain.ClassDetail{ClassID: "class-2", ModuleID: "mod-1", TrainerID: "tr-1", RoomID: "room-1", PlannedHours: 10},
			wantSeq: 1,
		},
		{
			name:    "missing fields",
			detail:  &domain.ClassDetail{ClassID: "class-1", ModuleID: "", TrainerID: "tr-1", RoomID: "room-1", PlannedHours: 25},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "non-positive planned hours",
			detail:  &domain.ClassDetail{ClassID: "class-1", ModuleID: "mod-2", TrainerID: "tr-1", RoomID: "room-1", PlannedHours: 0},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "module already attached",
			detail:  &domain.ClassDetail{ClassID: "class-1", ModuleID: "mod-1", TrainerID: "tr-2", RoomID: "room-2", PlannedHours: 25},
			wantErr: domain.ErrDuplicateModule,
		},
		{
			name:   "store duplicate race surfaces sentinel",
			detail: &domain.ClassDetail{ClassID: "class-1", ModuleID: "mod-2", TrainerID: "tr-1", RoomID: "room-1", PlannedHours: 25},
			setup: func(f *fakeDetailDirectory) {
				f.createErr = domain.ErrDuplicateSequence
			},
			wantErr: domain.ErrDuplicateSequence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeDetailDirectory(existing)
			if tt.setup != nil {
				tt.setup(repo)
			}
			svc := NewClassDetailService(repo, 2*time.Second)
			err := svc.Attach(ctx, tt.detail)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.created)
				return
			}
			require.NoError(t, err)
			require.Len(t, repo.created, 1)
			assert.Equal(t, tt.wantSeq, repo.created[0].Sequence)
			assert.False(t, repo.created[0].CreatedAt.IsZero())
		})
	}
}

func TestClassDetailService_Detach(t *testing.T) {
	ctx := context.Background()
	repo := newFakeDetailDirectory(&domain.ClassDetail{ID: "cd-1", ClassID: "class-1", ModuleID: "mod-1"})
	svc := NewClassDetailService(repo, 2*time.Second)

	require.NoError(t, svc.Detach(ctx, "cd-1"))
	_, err := repo.GetByID(ctx, "cd-1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Detach(ctx, "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClassDetailService_ListByClass(t *testing.T) {
	ctx := context.Background()
	repo := newFakeDetailDirectory()
	svc := NewClassDetailService(repo, 2*time.Second)

	entries, err := svc.ListByClass(ctx, "class-1")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	_, err = svc.ListByClass(ctx, "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.existsErr = errors.New("boom") // unrelated to list; ensures no cross-talk
	_, err = svc.ListByClass(ctx, "class-1")
	require.NoError(t, err)
}
