package services

import (
	"context"
	"fmt"
	"time"

	"academyscheduler/internal/domain"
)

type classDetailService struct {
	detailRepo     domain.ClassDetailRepository
	contextTimeout time.Duration
}

// NewClassDetailService creates a ClassDetailService backed by the given
// repository.
func NewClassDetailService(detailRepo domain.ClassDetailRepository, timeout time.Duration) domain.ClassDetailService {
	return &classDetailService{
		detailRepo:     detailRepo,
		contextTimeout: timeout,
	}
}

// Attach adds a module to a class. A module may be attached to a class only
// once, and each detail gets a sequence number unique within the class,
// auto-assigned as max+1 when the caller leaves it zero.
func (s *classDetailService) Attach(ctx context.Context, detail *domain.ClassDetail) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if detail.ClassID == "" || detail.ModuleID == "" || detail.TrainerID == "" || detail.RoomID == "" {
		return fmt.Errorf("%w: class, module, trainer and room are required", domain.ErrInvalidInput)
	}
	if detail.PlannedHours <= 0 {
		return fmt.Errorf("%w: planned hours must be positive", domain.ErrInvalidInput)
	}

	exists, err := s.detailRepo.ExistsByClassAndModule(ctx, detail.ClassID, detail.ModuleID)
	if err != nil {
		return fmt.Errorf("check module attachment: %w", err)
	}
	if exists {
		return domain.ErrDuplicateModule
	}

	if detail.Sequence == 0 {
		maxSeq, err := s.detailRepo.MaxSequence(ctx, detail.ClassID)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		detail.Sequence = maxSeq + 1
	}

	detail.CreatedAt = time.Now()
	// The repository maps unique-constraint violations back to the duplicate
	// sentinels, covering the race where two attachments pass the check above.
	if err := s.detailRepo.Create(ctx, detail); err != nil {
		return err
	}
	return nil
}

func (s *classDetailService) ListByClass(ctx context.Context, classID string) ([]*domain.ClassDetailEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if classID == "" {
		return nil, fmt.Errorf("%w: class id is required", domain.ErrInvalidInput)
	}
	entries, err := s.detailRepo.ListByClassID(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("list class details: %w", err)
	}
	if entries == nil {
		entries = []*domain.ClassDetailEntry{}
	}
	return entries, nil
}

func (s *classDetailService) Detach(ctx context.Context, detailID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if detailID == "" {
		return fmt.Errorf("%w: detail id is required", domain.ErrInvalidInput)
	}
	if err := s.detailRepo.Delete(ctx, detailID); err != nil {
		return fmt.Errorf("detach module: %w", err)
	}
	return nil
}
