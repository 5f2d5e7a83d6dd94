package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for class-detail operations.
var (
	ErrDuplicateModule   = errors.New("module already attached to this class")
	ErrDuplicateSequence = errors.New("sequence already used in this class")
)

// ClassDetail assigns one module to one class, taught by one trainer in one
// room. It is the unit the scheduler books sessions against: the detail
// fixes the (room, trainer, class) triple checked for double-booking.
type ClassDetail struct {
	ID           string    `json:"id"`
	ClassID      string    `json:"class_id"`
	ModuleID     string    `json:"module_id"`
	TrainerID    string    `json:"trainer_id"`
	RoomID       string    `json:"room_id"`
	PlannedHours int       `json:"planned_hours"`
	Sequence     int       `json:"sequence"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewClassDetail returns a new ClassDetail with the given fields. ID is set
// by the repository on create.
func NewClassDetail(classID, moduleID, trainerID, roomID string, plannedHours, sequence int, createdAt time.Time) *ClassDetail {
	return &ClassDetail{
		ClassID:      classID,
		ModuleID:     moduleID,
		TrainerID:    trainerID,
		RoomID:       roomID,
		PlannedHours: plannedHours,
		Sequence:     sequence,
		CreatedAt:    createdAt,
	}
}

// ClassDetailEntry is a class-detail joined with the display names of the
// module, trainer, and room, ordered by sequence in listings.
type ClassDetailEntry struct {
	ID           string `json:"id"`
	Sequence     int    `json:"sequence"`
	PlannedHours int    `json:"planned_hours"`
	ModuleID     string `json:"module_id"`
	ModuleName   string `json:"module_name"`
	TrainerID    string `json:"trainer_id"`
	TrainerName  string `json:"trainer_name"`
	RoomID       string `json:"room_id"`
	RoomName     string `json:"room_name"`
}

// ClassDetailRepository defines the interface for class-detail storage.
type ClassDetailRepository interface {
	Create(ctx context.Context, detail *ClassDetail) error
	// GetByID resolves a class-detail to its full record, ErrNotFound when
	// the id does not exist.
	GetByID(ctx context.Context, id string) (*ClassDetail, error)
	ListByClassID(ctx context.Context, classID string) ([]*ClassDetailEntry, error)
	Delete(ctx context.Context, id string) error
	ExistsByClassAndModule(ctx context.Context, classID, moduleID string) (bool, error)
	// MaxSequence returns the highest sequence number used in the class, or
	// zero when the class has no details yet.
	MaxSequence(ctx context.Context, classID string) (int, error)
}

// ClassDetailService defines the business logic for the class-detail
// directory.
type ClassDetailService interface {
	Attach(ctx context.Context, detail *ClassDetail) error
	ListByClass(ctx context.Context, classID string) ([]*ClassDetailEntry, error)
	Detach(ctx context.Context, detailID string) error
}
