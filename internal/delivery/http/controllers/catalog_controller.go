package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"academyscheduler/internal/delivery/http/helpers"
	"academyscheduler/internal/domain"
)

// CreateRoomRequest is the request body for POST /rooms.
type CreateRoomRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

func (c CreateRoomRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Capacity < 0 {
		errs = append(errs, "capacity must not be negative")
	}
	return errs
}

// CreateTrainerRequest is the request body for POST /trainers.
type CreateTrainerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (c CreateTrainerRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// CreateModuleRequest is the request body for POST /modules.
type CreateModuleRequest struct {
	Name  string `json:"name"`
	Hours int    `json:"hours"`
}

func (c CreateModuleRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Hours <= 0 {
		errs = append(errs, "hours must be positive")
	}
	return errs
}

// CreateClassRequest is the request body for POST /classes.
type CreateClassRequest struct {
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	StartsOn time.Time `json:"starts_on"`
	EndsOn   time.Time `json:"ends_on"`
}

func (c CreateClassRequest) Validate() []string {
	var errs []string
	if c.Code == "" {
		errs = append(errs, "code is required")
	}
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.StartsOn.IsZero() {
		errs = append(errs, "starts_on is required")
	}
	if c.EndsOn.IsZero() {
		errs = append(errs, "ends_on is required")
	}
	return errs
}

// ListClassesResponse is the data payload for GET /classes (200).
type ListClassesResponse struct {
	Classes    []*domain.Class        `json:"classes"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

type CatalogController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewCatalogController(logger *slog.Logger, svc domain.CatalogService) *CatalogController {
	return &CatalogController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *CatalogController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// CreateRoom godoc
// @Summary Create a room
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateRoomRequest true "Room to create"
// @Success 201 {object} helpers.APIResponse "data contains the created room"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /rooms [post]
func (c *CatalogController) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	room := &domain.Room{Name: req.Name, Capacity: req.Capacity}
	if err := c.Service.CreateRoom(r.Context(), room); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, room)
}

// ListRooms godoc
// @Summary List rooms
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of rooms"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /rooms [get]
func (c *CatalogController) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := c.Service.ListRooms(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rooms)
}

// DeleteRoom godoc
// @Summary Delete a room
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param roomID path string true "Room ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /rooms/{roomID} [delete]
func (c *CatalogController) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteRoom(r.Context(), r.PathValue("roomID")); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// CreateTrainer godoc
// @Summary Create a trainer
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateTrainerRequest true "Trainer to create"
// @Success 201 {object} helpers.APIResponse "data contains the created trainer"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /trainers [post]
func (c *CatalogController) CreateTrainer(w http.ResponseWriter, r *http.Request) {
	var req CreateTrainerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	trainer := &domain.Trainer{Name: req.Name, Email: req.Email}
	if err := c.Service.CreateTrainer(r.Context(), trainer); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, trainer)
}

// ListTrainers godoc
// @Summary List trainers
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of trainers"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /trainers [get]
func (c *CatalogController) ListTrainers(w http.ResponseWriter, r *http.Request) {
	trainers, err := c.Service.ListTrainers(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, trainers)
}

// DeleteTrainer godoc
// @Summary Delete a trainer
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param trainerID path string true "Trainer ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /trainers/{trainerID} [delete]
func (c *CatalogController) DeleteTrainer(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteTrainer(r.Context(), r.PathValue("trainerID")); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// CreateModule godoc
// @Summary Create a module
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateModuleRequest true "Module to create"
// @Success 201 {object} helpers.APIResponse "data contains the created module"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /modules [post]
func (c *CatalogController) CreateModule(w http.ResponseWriter, r *http.Request) {
	var req CreateModuleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	module := &domain.Module{Name: req.Name, Hours: req.Hours}
	if err := c.Service.CreateModule(r.Context(), module); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, module)
}

// ListModules godoc
// @Summary List modules
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of modules"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /modules [get]
func (c *CatalogController) ListModules(w http.ResponseWriter, r *http.Request) {
	modules, err := c.Service.ListModules(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, modules)
}

// DeleteModule godoc
// @Summary Delete a module
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param moduleID path string true "Module ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /modules/{moduleID} [delete]
func (c *CatalogController) DeleteModule(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteModule(r.Context(), r.PathValue("moduleID")); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// CreateClass godoc
// @Summary Create a class
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateClassRequest true "Class to create"
// @Success 201 {object} helpers.APIResponse "data contains the created class"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /classes [post]
func (c *CatalogController) CreateClass(w http.ResponseWriter, r *http.Request) {
	var req CreateClassRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	class := &domain.Class{Code: req.Code, Name: req.Name, StartsOn: req.StartsOn, EndsOn: req.EndsOn}
	if err := c.Service.CreateClass(r.Context(), class); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, class)
}

// ListClasses godoc
// @Summary List classes
// @Description Returns one page of classes, optionally filtered by a case-insensitive search on code and name.
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search on code and name"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains classes and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /classes [get]
func (c *CatalogController) ListClasses(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	search := r.URL.Query().Get("search")
	classes, total, err := c.Service.ListClasses(r.Context(), search, params)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListClassesResponse{
		Classes:    classes,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// DeleteClass godoc
// @Summary Delete a class
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param classID path string true "Class ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /classes/{classID} [delete]
func (c *CatalogController) DeleteClass(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteClass(r.Context(), r.PathValue("classID")); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}
