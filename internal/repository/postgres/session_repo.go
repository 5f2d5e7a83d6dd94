package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"academyscheduler/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{DB: db}
}

// conflictQuery finds existing bookings that collide with the proposed
// interval on any of the three shared resources. The overlap test is
// half-open: an existing session ending exactly when the new one starts is
// not a collision.
const conflictQuery = `
	SELECT 'room' AS resource
	FROM sessions s
	JOIN class_details cd ON cd.id = s.class_detail_id
	WHERE cd.room_id = $1 AND $4 < s.ends_at AND $5 > s.starts_at
	UNION ALL
	SELECT 'trainer' AS resource
	FROM sessions s
	JOIN class_details cd ON cd.id = s.class_detail_id
	WHERE cd.trainer_id = $2 AND $4 < s.ends_at AND $5 > s.starts_at
	UNION ALL
	SELECT 'class' AS resource
	FROM sessions s
	JOIN class_details cd ON cd.id = s.class_detail_id
	WHERE cd.class_id = $3 AND $4 < s.ends_at AND $5 > s.starts_at
`

const insertSessionQuery = `
	INSERT INTO sessions (class_detail_id, starts_at, ends_at, created_at)
	VALUES ($1, $2, $3, $4)
	RETURNING id
`

// Schedule runs the conflict check and the insert in a single serializable
// transaction so two concurrent bookings of the same resource cannot both
// pass the check.
func (r *sessionRepository) Schedule(ctx context.Context, s *domain.Session, detail *domain.ClassDetail) error {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, conflictQuery,
		detail.RoomID, detail.TrainerID, detail.ClassID, s.StartsAt, s.EndsAt)
	if err != nil {
		return fmt.Errorf("conflict check: %w", err)
	}
	seen := make(map[domain.ResourceKind]bool)
	for rows.Next() {
		var resource string
		if err := rows.Scan(&resource); err != nil {
			rows.Close()
			return err
		}
		seen[domain.ResourceKind(resource)] = true
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	if len(seen) > 0 {
		var kinds []domain.ResourceKind
		for _, k := range []domain.ResourceKind{domain.ResourceRoom, domain.ResourceTrainer, domain.ResourceClass} {
			if seen[k] {
				kinds = append(kinds, k)
			}
		}
		return &domain.ConflictError{Resources: kinds}
	}

	if err := tx.QueryRowContext(ctx, insertSessionQuery,
		s.ClassDetailID, s.StartsAt, s.EndsAt, s.CreatedAt).Scan(&s.ID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *sessionRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

const listSessionsBase = `
	SELECT s.id, s.class_detail_id, s.starts_at, s.ends_at,
	       m.name AS module_name, t.name AS trainer_name,
	       r.name AS room_name, c.code AS class_code
	FROM sessions s
	JOIN class_details cd ON cd.id = s.class_detail_id
	JOIN modules m ON m.id = cd.module_id
	JOIN trainers t ON t.id = cd.trainer_id
	JOIN rooms r ON r.id = cd.room_id
	JOIN classes c ON c.id = cd.class_id
`

func (r *sessionRepository) ListByResource(ctx context.Context, kind domain.ResourceKind, resourceID string, from, to *time.Time) ([]*domain.SessionEntry, error) {
	var conds []string
	var args []interface{}

	switch kind {
	case domain.ResourceRoom:
		args = append(args, resourceID)
		conds = append(conds, fmt.Sprintf("cd.room_id = $%d", len(args)))
	case domain.ResourceTrainer:
		args = append(args, resourceID)
		conds = append(conds, fmt.Sprintf("cd.trainer_id = $%d", len(args)))
	case domain.ResourceClass:
		args = append(args, resourceID)
		conds = append(conds, fmt.Sprintf("cd.class_id = $%d", len(args)))
	case domain.ResourceAll:
	default:
		return nil, fmt.Errorf("%w: unknown resource kind %q", domain.ErrInvalidInput, kind)
	}
	if from != nil && to != nil {
		args = append(args, *to)
		conds = append(conds, fmt.Sprintf("s.starts_at <= $%d", len(args)))
		args = append(args, *from)
		conds = append(conds, fmt.Sprintf("s.ends_at >= $%d", len(args)))
	}

	query := listSessionsBase
	if len(conds) > 0 {
		query += "\tWHERE " + strings.Join(conds, " AND ") + "\n"
	}
	query += "\tORDER BY s.starts_at ASC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.SessionEntry
	for rows.Next() {
		e := &domain.SessionEntry{}
		if err := rows.Scan(&e.ID, &e.ClassDetailID, &e.StartsAt, &e.EndsAt,
			&e.ModuleName, &e.TrainerName, &e.RoomName, &e.ClassCode); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
