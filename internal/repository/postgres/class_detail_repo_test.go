package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"academyscheduler/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassDetailRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	detail := func() *domain.ClassDetail {
		return &domain.ClassDetail{
			ClassID:      "class-100",
			ModuleID:     "mod-1",
			TrainerID:    "tr-10",
			RoomID:       "room-1",
			PlannedHours: 25,
			Sequence:     1,
			CreatedAt:    createdAt,
		}
	}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO class_details`).
					WithArgs("class-100", "mod-1", "tr-10", "room-1", 25, 1, createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("cd-uuid-1"))
			},
			wantID: "cd-uuid-1",
		},
		{
			name: "duplicate module unique violation",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO class_details`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "class_details_class_id_module_id_key"})
			},
			wantErr: domain.ErrDuplicateModule,
		},
		{
			name: "duplicate sequence unique violation",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO class_details`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "class_details_class_id_sequence_key"})
			},
			wantErr: domain.ErrDuplicateSequence,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO class_details`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewClassDetailRepository(db)
			d := detail()
			err = repo.Create(ctx, d)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, d.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestClassDetailRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "class_id", "module_id", "trainer_id", "room_id", "planned_hours", "sequence", "created_at"}

	t.Run("resolves the resource triple", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, class_id, module_id, trainer_id, room_id, planned_hours, sequence, created_at`).
			WithArgs("cd-1").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("cd-1", "class-100", "mod-1", "tr-10", "room-1", 25, 1, createdAt))

		repo := NewClassDetailRepository(db)
		d, err := repo.GetByID(ctx, "cd-1")
		require.NoError(t, err)
		assert.Equal(t, "room-1", d.RoomID)
		assert.Equal(t, "tr-10", d.TrainerID)
		assert.Equal(t, "class-100", d.ClassID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, class_id, module_id, trainer_id, room_id`).
			WithArgs("cd-missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewClassDetailRepository(db)
		_, err = repo.GetByID(ctx, "cd-missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestClassDetailRepository_ListByClassID(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	columns := []string{"id", "sequence", "planned_hours", "module_id", "module_name", "trainer_id", "trainer_name", "room_id", "room_name"}
	rows := sqlmock.NewRows(columns).
		AddRow("cd-1", 1, 25, "mod-1", "Networking", "tr-10", "Ana Silva", "room-1", "Lab 1").
		AddRow("cd-2", 2, 50, "mod-2", "Databases", "tr-20", "Rui Costa", "room-2", "Lab 2")
	mock.ExpectQuery(`FROM class_details cd(?s).*ORDER BY cd\.sequence ASC`).
		WithArgs("class-100").
		WillReturnRows(rows)

	repo := NewClassDetailRepository(db)
	entries, err := repo.ListByClassID(ctx, "class-100")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Sequence)
	assert.Equal(t, "Databases", entries[1].ModuleName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClassDetailRepository_ExistsAndMaxSequence(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("class-100", "mod-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(sequence\), 0\)`).
		WithArgs("class-100").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3))

	repo := NewClassDetailRepository(db)
	exists, err := repo.ExistsByClassAndModule(ctx, "class-100", "mod-1")
	require.NoError(t, err)
	assert.True(t, exists)

	max, err := repo.MaxSequence(ctx, "class-100")
	require.NoError(t, err)
	assert.Equal(t, 3, max)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClassDetailRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM class_details WHERE id`).
		WithArgs("cd-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewClassDetailRepository(db)
	require.NoError(t, repo.Delete(ctx, "cd-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
