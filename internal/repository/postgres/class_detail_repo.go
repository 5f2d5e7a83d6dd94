package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"academyscheduler/internal/domain"
)

// Postgres unique_violation error code.
const uniqueViolation = "23505"

type classDetailRepository struct {
	DB *sql.DB
}

func NewClassDetailRepository(db *sql.DB) domain.ClassDetailRepository {
	return &classDetailRepository{DB: db}
}

func (r *classDetailRepository) Create(ctx context.Context, d *domain.ClassDetail) error {
	query := `
		INSERT INTO class_details (class_id, module_id, trainer_id, room_id, planned_hours, sequence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		d.ClassID, d.ModuleID, d.TrainerID, d.RoomID, d.PlannedHours, d.Sequence, d.CreatedAt).Scan(&d.ID)
	if err != nil {
		// Two concurrent attachments can both pass the service-level checks;
		// the unique constraints are the backstop.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			if strings.Contains(pqErr.Constraint, "sequence") {
				return domain.ErrDuplicateSequence
			}
			return domain.ErrDuplicateModule
		}
		return err
	}
	return nil
}

func (r *classDetailRepository) GetByID(ctx context.Context, id string) (*domain.ClassDetail, error) {
	query := `
		SELECT id, class_id, module_id, trainer_id, room_id, planned_hours, sequence, created_at
		FROM class_details
		WHERE id = $1
	`
	d := &domain.ClassDetail{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.ClassID, &d.ModuleID, &d.TrainerID, &d.RoomID, &d.PlannedHours, &d.Sequence, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *classDetailRepository) ListByClassID(ctx context.Context, classID string) ([]*domain.ClassDetailEntry, error) {
	query := `
		SELECT cd.id, cd.sequence, cd.planned_hours,
		       cd.module_id, m.name AS module_name,
		       cd.trainer_id, t.name AS trainer_name,
		       cd.room_id, r.name AS room_name
		FROM class_details cd
		JOIN modules m ON m.id = cd.module_id
		JOIN trainers t ON t.id = cd.trainer_id
		JOIN rooms r ON r.id = cd.room_id
		WHERE cd.class_id = $1
		ORDER BY cd.sequence ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.ClassDetailEntry
	for rows.Next() {
		e := &domain.ClassDetailEntry{}
		if err := rows.Scan(&e.ID, &e.Sequence, &e.PlannedHours,
			&e.ModuleID, &e.ModuleName,
			&e.TrainerID, &e.TrainerName,
			&e.RoomID, &e.RoomName); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *classDetailRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM class_details WHERE id = $1`, id)
	return err
}

func (r *classDetailRepository) ExistsByClassAndModule(ctx context.Context, classID, moduleID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM class_details WHERE class_id = $1 AND module_id = $2)`,
		classID, moduleID).Scan(&exists)
	return exists, err
}

func (r *classDetailRepository) MaxSequence(ctx context.Context, classID string) (int, error) {
	var max int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(sequence), 0) FROM class_details WHERE class_id = $1`,
		classID).Scan(&max)
	return max, err
}
