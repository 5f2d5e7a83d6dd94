package domain

import (
	"context"
	"time"
)

// Room represents a physical room lessons are taught in.
type Room struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

// Trainer represents a teacher assignable to class-details.
type Trainer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Module represents one curricular unit of a course.
type Module struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Hours     int       `json:"hours"`
	CreatedAt time.Time `json:"created_at"`
}

// Class is a cohort of students following a course over a fixed date range.
type Class struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	StartsOn  time.Time `json:"starts_on"`
	EndsOn    time.Time `json:"ends_on"`
	CreatedAt time.Time `json:"created_at"`
}

// CatalogRepository defines the interface for room, trainer, module, and
// class storage.
type CatalogRepository interface {
	CreateRoom(ctx context.Context, room *Room) error
	ListRooms(ctx context.Context) ([]*Room, error)
	DeleteRoom(ctx context.Context, id string) error

	CreateTrainer(ctx context.Context, trainer *Trainer) error
	ListTrainers(ctx context.Context) ([]*Trainer, error)
	DeleteTrainer(ctx context.Context, id string) error

	CreateModule(ctx context.Context, module *Module) error
	ListModules(ctx context.Context) ([]*Module, error)
	DeleteModule(ctx context.Context, id string) error

	CreateClass(ctx context.Context, class *Class) error
	// ListClasses returns one page of classes matching the optional search
	// string (case-insensitive on code and name) plus the total match count.
	ListClasses(ctx context.Context, search string, params PaginationParams) ([]*Class, int, error)
	GetClassByID(ctx context.Context, id string) (*Class, error)
	DeleteClass(ctx context.Context, id string) error
}

// CatalogService defines the business logic for the catalog CRUD layer.
type CatalogService interface {
	CreateRoom(ctx context.Context, room *Room) error
	ListRooms(ctx context.Context) ([]*Room, error)
	DeleteRoom(ctx context.Context, id string) error

	CreateTrainer(ctx context.Context, trainer *Trainer) error
	ListTrainers(ctx context.Context) ([]*Trainer, error)
	DeleteTrainer(ctx context.Context, id string) error

	CreateModule(ctx context.Context, module *Module) error
	ListModules(ctx context.Context) ([]*Module, error)
	DeleteModule(ctx context.Context, id string) error

	CreateClass(ctx context.Context, class *Class) error
	ListClasses(ctx context.Context, search string, params PaginationParams) ([]*Class, int, error)
	DeleteClass(ctx context.Context, id string) error
}
