package domain

import (
	"context"
	"time"
)

// MaxSessionDuration is the longest a single lesson may run. The bound is
// inclusive: a session of exactly three hours is accepted.
const MaxSessionDuration = 3 * time.Hour

// Session is one scheduled lesson: a class-detail taught over a concrete
// half-open interval [StartsAt, EndsAt).
type Session struct {
	ID            string    `json:"id"`
	ClassDetailID string    `json:"class_detail_id"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewSession returns a new Session with the given fields. ID is set by the
// repository on create.
func NewSession(classDetailID string, startsAt, endsAt, createdAt time.Time) *Session {
	return &Session{
		ClassDetailID: classDetailID,
		StartsAt:      startsAt,
		EndsAt:        endsAt,
		CreatedAt:     createdAt,
	}
}

// Overlaps reports whether the session's interval intersects [startsAt,
// endsAt) under half-open semantics: touching endpoints do not overlap.
func (s *Session) Overlaps(startsAt, endsAt time.Time) bool {
	return startsAt.Before(s.EndsAt) && s.StartsAt.Before(endsAt)
}

// SessionEntry is a session joined with the display names of its
// class-detail resources, as returned by the list queries.
type SessionEntry struct {
	ID            string    `json:"id"`
	ClassDetailID string    `json:"class_detail_id"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	ModuleName    string    `json:"module_name"`
	TrainerName   string    `json:"trainer_name"`
	RoomName      string    `json:"room_name"`
	ClassCode     string    `json:"class_code"`
}

// SessionRepository defines the interface for session storage.
type SessionRepository interface {
	// Schedule checks the proposed interval against existing bookings of the
	// detail's room, trainer, and class and inserts the session when free.
	// Check and insert run in one serializable transaction; a collision is
	// reported as *ConflictError and leaves the store untouched.
	Schedule(ctx context.Context, session *Session, detail *ClassDetail) error
	// Delete removes a session by id. Returns false when no row matched.
	Delete(ctx context.Context, id string) (bool, error)
	// ListByResource returns sessions for one resource (or all of them),
	// ordered by starts_at ascending. A non-nil from/to pair narrows the
	// result to sessions intersecting the closed range [from, to].
	ListByResource(ctx context.Context, kind ResourceKind, resourceID string, from, to *time.Time) ([]*SessionEntry, error)
}

// SchedulerService defines the business logic for booking lessons.
type SchedulerService interface {
	Schedule(ctx context.Context, classDetailID string, startsAt, endsAt time.Time) (*Session, error)
	Cancel(ctx context.Context, sessionID string) error
	List(ctx context.Context, kind ResourceKind, resourceID string, from, to *time.Time) ([]*SessionEntry, error)
}
