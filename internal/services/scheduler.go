package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"academyscheduler/internal/domain"
)

type schedulerService struct {
	sessionRepo     domain.SessionRepository
	classDetailRepo domain.ClassDetailRepository
	contextTimeout  time.Duration
}

// NewSchedulerService creates a SchedulerService backed by the given
// repositories.
func NewSchedulerService(sessionRepo domain.SessionRepository, classDetailRepo domain.ClassDetailRepository, timeout time.Duration) domain.SchedulerService {
	return &schedulerService{
		sessionRepo:     sessionRepo,
		classDetailRepo: classDetailRepo,
		contextTimeout:  timeout,
	}
}

// Schedule validates the proposed interval, resolves the class-detail to its
// (room, trainer, class) triple, and books the session when none of the
// three resources is already occupied. Validation is fail-fast and nothing
// is written on any failure path.
func (s *schedulerService) Schedule(ctx context.Context, classDetailID string, startsAt, endsAt time.Time) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if classDetailID == "" || startsAt.IsZero() || endsAt.IsZero() {
		return nil, fmt.Errorf("%w: incomplete data", domain.ErrInvalidInput)
	}

	duration := endsAt.Sub(startsAt)
	if duration <= 0 {
		return nil, fmt.Errorf("%w: end must be after start", domain.ErrInvalidInput)
	}
	if duration > domain.MaxSessionDuration {
		return nil, fmt.Errorf("%w: maximum session length is 3 hours", domain.ErrInvalidInput)
	}

	detail, err := s.classDetailRepo.GetByID(ctx, classDetailID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("class detail: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("resolve class detail: %w", err)
	}

	session := domain.NewSession(classDetailID, startsAt, endsAt, time.Now())
	if err := s.sessionRepo.Schedule(ctx, session, detail); err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return nil, err
		}
		return nil, fmt.Errorf("schedule session: %w", err)
	}
	return session, nil
}

// Cancel removes the session. A missing id is a no-op success: deletion can
// only reduce conflicts, so there is nothing to re-validate.
func (s *schedulerService) Cancel(ctx context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if sessionID == "" {
		return fmt.Errorf("%w: session id is required", domain.ErrInvalidInput)
	}
	if _, err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("cancel session: %w", err)
	}
	return nil
}

// List returns sessions for the given resource ordered by start time
// ascending. from/to, when both set, narrow to sessions intersecting the
// closed range.
func (s *schedulerService) List(ctx context.Context, kind domain.ResourceKind, resourceID string, from, to *time.Time) ([]*domain.SessionEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	switch kind {
	case domain.ResourceRoom, domain.ResourceTrainer, domain.ResourceClass:
		if resourceID == "" {
			return nil, fmt.Errorf("%w: resource id is required", domain.ErrInvalidInput)
		}
	case domain.ResourceAll:
	default:
		return nil, fmt.Errorf("%w: unknown resource kind %q", domain.ErrInvalidInput, kind)
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, fmt.Errorf("%w: range end before range start", domain.ErrInvalidInput)
	}

	entries, err := s.sessionRepo.ListByResource(ctx, kind, resourceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if entries == nil {
		entries = []*domain.SessionEntry{}
	}
	return entries, nil
}
