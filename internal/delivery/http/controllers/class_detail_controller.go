package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"academyscheduler/internal/delivery/http/helpers"
	"academyscheduler/internal/domain"
)

// AttachModuleRequest is the request body for POST /classes/{classID}/modules.
type AttachModuleRequest struct {
	ModuleID     string `json:"module_id"`
	TrainerID    string `json:"trainer_id"`
	RoomID       string `json:"room_id"`
	PlannedHours int    `json:"planned_hours"`
	Sequence     int    `json:"sequence"`
}

// Validate implements Validator.
func (a AttachModuleRequest) Validate() []string {
	var errs []string
	if a.ModuleID == "" {
		errs = append(errs, "module_id is required")
	}
	if a.TrainerID == "" {
		errs = append(errs, "trainer_id is required")
	}
	if a.RoomID == "" {
		errs = append(errs, "room_id is required")
	}
	if a.PlannedHours <= 0 {
		errs = append(errs, "planned_hours must be positive")
	}
	if a.Sequence < 0 {
		errs = append(errs, "sequence must not be negative")
	}
	return errs
}

// AttachModuleSuccessResponse is the success response envelope for POST /classes/{classID}/modules (201).
type AttachModuleSuccessResponse struct {
	Data  *domain.ClassDetail `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ListClassModulesSuccessResponse is the success response envelope for GET /classes/{classID}/modules (200).
type ListClassModulesSuccessResponse struct {
	Data  []*domain.ClassDetailEntry `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

type ClassDetailController struct {
	Logger  *slog.Logger
	Service domain.ClassDetailService
}

func NewClassDetailController(logger *slog.Logger, svc domain.ClassDetailService) *ClassDetailController {
	return &ClassDetailController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *ClassDetailController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateModule), errors.Is(err, domain.ErrDuplicateSequence):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// AttachModule godoc
// @Summary Attach a module to a class
// @Description Adds a module to the class curriculum, assigning a trainer and a room. Sequence zero (or omitted) auto-assigns the next position.
// @Tags class-details
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param classID path string true "Class ID"
// @Param body body AttachModuleRequest true "Module assignment"
// @Success 201 {object} controllers.AttachModuleSuccessResponse "data contains the created class-detail"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (module or sequence already taken)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /classes/{classID}/modules [post]
func (c *ClassDetailController) AttachModule(w http.ResponseWriter, r *http.Request) {
	classID := r.PathValue("classID")
	if classID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing classID")
		return
	}
	var req AttachModuleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	detail := domain.NewClassDetail(classID, req.ModuleID, req.TrainerID, req.RoomID, req.PlannedHours, req.Sequence, time.Time{})
	if err := c.Service.Attach(r.Context(), detail); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, detail)
}

// ListClassModules godoc
// @Summary List the modules attached to a class
// @Description Returns the class curriculum ordered by sequence, each entry joined with module, trainer, and room names.
// @Tags class-details
// @Produce json
// @Security BearerAuth
// @Param classID path string true "Class ID"
// @Success 200 {object} controllers.ListClassModulesSuccessResponse "data is an array of class-details"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /classes/{classID}/modules [get]
func (c *ClassDetailController) ListClassModules(w http.ResponseWriter, r *http.Request) {
	classID := r.PathValue("classID")
	if classID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing classID")
		return
	}
	entries, err := c.Service.ListByClass(r.Context(), classID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}

// DetachModule godoc
// @Summary Detach a module from its class
// @Description Removes a class-detail. Sessions already scheduled against it are removed with it.
// @Tags class-details
// @Produce json
// @Security BearerAuth
// @Param detailID path string true "Class-detail ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /class-details/{detailID} [delete]
func (c *ClassDetailController) DetachModule(w http.ResponseWriter, r *http.Request) {
	detailID := r.PathValue("detailID")
	if detailID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing detailID")
		return
	}
	if err := c.Service.Detach(r.Context(), detailID); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "detached"})
}
