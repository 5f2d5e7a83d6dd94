package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"academyscheduler/internal/domain"
)

type catalogService struct {
	catalogRepo    domain.CatalogRepository
	contextTimeout time.Duration
}

// NewCatalogService creates a CatalogService backed by the given repository.
func NewCatalogService(catalogRepo domain.CatalogRepository, timeout time.Duration) domain.CatalogService {
	return &catalogService{
		catalogRepo:    catalogRepo,
		contextTimeout: timeout,
	}
}

func (s *catalogService) CreateRoom(ctx context.Context, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	room.Name = strings.TrimSpace(room.Name)
	if room.Name == "" {
		return fmt.Errorf("%w: room name is required", domain.ErrInvalidInput)
	}
	if room.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", domain.ErrInvalidInput)
	}
	room.CreatedAt = time.Now()
	return s.catalogRepo.CreateRoom(ctx, room)
}

func (s *catalogService) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rooms, err := s.catalogRepo.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	if rooms == nil {
		rooms = []*domain.Room{}
	}
	return rooms, nil
}

func (s *catalogService) DeleteRoom(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.catalogRepo.DeleteRoom(ctx, id)
}

func (s *catalogService) CreateTrainer(ctx context.Context, trainer *domain.Trainer) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trainer.Name = strings.TrimSpace(trainer.Name)
	trainer.Email = strings.TrimSpace(strings.ToLower(trainer.Email))
	if trainer.Name == "" {
		return fmt.Errorf("%w: trainer name is required", domain.ErrInvalidInput)
	}
	trainer.CreatedAt = time.Now()
	return s.catalogRepo.CreateTrainer(ctx, trainer)
}

func (s *catalogService) ListTrainers(ctx context.Context) ([]*domain.Trainer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trainers, err := s.catalogRepo.ListTrainers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trainers: %w", err)
	}
	if trainers == nil {
		trainers = []*domain.Trainer{}
	}
	return trainers, nil
}

func (s *catalogService) DeleteTrainer(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.catalogRepo.DeleteTrainer(ctx, id)
}

func (s *catalogService) CreateModule(ctx context.Context, module *domain.Module) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	module.Name = strings.TrimSpace(module.Name)
	if module.Name == "" {
		return fmt.Errorf("%w: module name is required", domain.ErrInvalidInput)
	}
	if module.Hours <= 0 {
		return fmt.Errorf("%w: module hours must be positive", domain.ErrInvalidInput)
	}
	module.CreatedAt = time.Now()
	return s.catalogRepo.CreateModule(ctx, module)
}

func (s *catalogService) ListModules(ctx context.Context) ([]*domain.Module, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	modules, err := s.catalogRepo.ListModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	if modules == nil {
		modules = []*domain.Module{}
	}
	return modules, nil
}

func (s *catalogService) DeleteModule(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.catalogRepo.DeleteModule(ctx, id)
}

func (s *catalogService) CreateClass(ctx context.Context, class *domain.Class) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	class.Code = strings.TrimSpace(class.Code)
	class.Name = strings.TrimSpace(class.Name)
	if class.Code == "" {
		return fmt.Errorf("%w: class code is required", domain.ErrInvalidInput)
	}
	if !class.StartsOn.IsZero() && !class.EndsOn.IsZero() && class.EndsOn.Before(class.StartsOn) {
		return fmt.Errorf("%w: class end date before start date", domain.ErrInvalidInput)
	}
	class.CreatedAt = time.Now()
	return s.catalogRepo.CreateClass(ctx, class)
}

func (s *catalogService) ListClasses(ctx context.Context, search string, params domain.PaginationParams) ([]*domain.Class, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	classes, total, err := s.catalogRepo.ListClasses(ctx, strings.TrimSpace(search), params)
	if err != nil {
		return nil, 0, fmt.Errorf("list classes: %w", err)
	}
	if classes == nil {
		classes = []*domain.Class{}
	}
	return classes, total, nil
}

func (s *catalogService) DeleteClass(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.catalogRepo.DeleteClass(ctx, id)
}
