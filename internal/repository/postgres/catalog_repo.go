package postgres

import (
	"context"
	"database/sql"
	"errors"

	"academyscheduler/internal/domain"
)

type catalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(db *sql.DB) domain.CatalogRepository {
	return &catalogRepository{DB: db}
}

func (r *catalogRepository) CreateRoom(ctx context.Context, room *domain.Room) error {
	query := `
		INSERT INTO rooms (name, capacity, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, room.Name, room.Capacity, room.CreatedAt).Scan(&room.ID)
}

func (r *catalogRepository) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, capacity, created_at FROM rooms ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var rooms []*domain.Room
	for rows.Next() {
		room := &domain.Room{}
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity, &room.CreatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *catalogRepository) DeleteRoom(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	return err
}

func (r *catalogRepository) CreateTrainer(ctx context.Context, trainer *domain.Trainer) error {
	query := `
		INSERT INTO trainers (name, email, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, trainer.Name, trainer.Email, trainer.CreatedAt).Scan(&trainer.ID)
}

func (r *catalogRepository) ListTrainers(ctx context.Context) ([]*domain.Trainer, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, email, created_at FROM trainers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var trainers []*domain.Trainer
	for rows.Next() {
		trainer := &domain.Trainer{}
		if err := rows.Scan(&trainer.ID, &trainer.Name, &trainer.Email, &trainer.CreatedAt); err != nil {
			return nil, err
		}
		trainers = append(trainers, trainer)
	}
	return trainers, rows.Err()
}

func (r *catalogRepository) DeleteTrainer(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM trainers WHERE id = $1`, id)
	return err
}

func (r *catalogRepository) CreateModule(ctx context.Context, module *domain.Module) error {
	query := `
		INSERT INTO modules (name, hours, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, module.Name, module.Hours, module.CreatedAt).Scan(&module.ID)
}

func (r *catalogRepository) ListModules(ctx context.Context) ([]*domain.Module, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, hours, created_at FROM modules ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var modules []*domain.Module
	for rows.Next() {
		module := &domain.Module{}
		if err := rows.Scan(&module.ID, &module.Name, &module.Hours, &module.CreatedAt); err != nil {
			return nil, err
		}
		modules = append(modules, module)
	}
	return modules, rows.Err()
}

func (r *catalogRepository) DeleteModule(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM modules WHERE id = $1`, id)
	return err
}

func (r *catalogRepository) CreateClass(ctx context.Context, class *domain.Class) error {
	query := `
		INSERT INTO classes (code, name, starts_on, ends_on, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		class.Code, class.Name, class.StartsOn, class.EndsOn, class.CreatedAt).Scan(&class.ID)
}

func (r *catalogRepository) ListClasses(ctx context.Context, search string, params domain.PaginationParams) ([]*domain.Class, int, error) {
	pattern := "%" + search + "%"

	var total int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM classes WHERE code ILIKE $1 OR name ILIKE $1`,
		pattern).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, code, name, starts_on, ends_on, created_at
		FROM classes
		WHERE code ILIKE $1 OR name ILIKE $1
		ORDER BY code
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, pattern, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var classes []*domain.Class
	for rows.Next() {
		class := &domain.Class{}
		if err := rows.Scan(&class.ID, &class.Code, &class.Name, &class.StartsOn, &class.EndsOn, &class.CreatedAt); err != nil {
			return nil, 0, err
		}
		classes = append(classes, class)
	}
	return classes, total, rows.Err()
}

func (r *catalogRepository) GetClassByID(ctx context.Context, id string) (*domain.Class, error) {
	query := `
		SELECT id, code, name, starts_on, ends_on, created_at
		FROM classes
		WHERE id = $1
	`
	class := &domain.Class{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&class.ID, &class.Code, &class.Name, &class.StartsOn, &class.EndsOn, &class.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return class, nil
}

func (r *catalogRepository) DeleteClass(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	return err
}
