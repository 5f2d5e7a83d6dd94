package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"academyscheduler/internal/delivery/http/helpers"
	"academyscheduler/internal/domain"
)

// ScheduleSessionRequest is the request body for POST /sessions.
// Timestamps are RFC-3339.
type ScheduleSessionRequest struct {
	ClassDetailID string    `json:"class_detail_id"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
}

// Validate implements Validator.
func (s ScheduleSessionRequest) Validate() []string {
	var errs []string
	if s.ClassDetailID == "" {
		errs = append(errs, "class_detail_id is required")
	}
	if s.StartsAt.IsZero() {
		errs = append(errs, "starts_at is required")
	}
	if s.EndsAt.IsZero() {
		errs = append(errs, "ends_at is required")
	}
	return errs
}

// ScheduleSessionSuccessResponse is the success response envelope for POST /sessions (201).
type ScheduleSessionSuccessResponse struct {
	Data  *domain.Session   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSessionsSuccessResponse is the success response envelope for the session list endpoints (200).
type ListSessionsSuccessResponse struct {
	Data  []*domain.SessionEntry `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// CancelSessionResponse is the data payload for DELETE /sessions/{sessionID} (200).
type CancelSessionResponse struct {
	Status string `json:"status"`
}

// CancelSessionSuccessResponse is the success response envelope for DELETE /sessions/{sessionID} (200).
type CancelSessionSuccessResponse struct {
	Data  CancelSessionResponse `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

type ScheduleController struct {
	Logger  *slog.Logger
	Service domain.SchedulerService
}

func NewScheduleController(logger *slog.Logger, svc domain.SchedulerService) *ScheduleController {
	return &ScheduleController{
		Logger:  logger,
		Service: svc,
	}
}

// writeSchedulerError maps scheduler error kinds to HTTP statuses: 400 for
// invalid input, 404 for a missing class-detail, 409 for a booking conflict,
// 500 otherwise.
func (c *ScheduleController) writeSchedulerError(w http.ResponseWriter, r *http.Request, err error) {
	var conflict *domain.ConflictError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "class detail not found")
	case errors.As(err, &conflict):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, conflict.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// ScheduleSession godoc
// @Summary Schedule a lesson
// @Description Books a session for a class-detail over [starts_at, ends_at). Rejects sessions longer than 3 hours or with non-positive duration, and refuses any slot where the room, trainer, or class is already booked. The conflict message names every resource kind involved.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ScheduleSessionRequest true "Session to schedule (RFC-3339 timestamps)"
// @Success 201 {object} controllers.ScheduleSessionSuccessResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (incomplete data, bad duration)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown class-detail)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (room/trainer/class already booked)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions [post]
func (c *ScheduleController) ScheduleSession(w http.ResponseWriter, r *http.Request) {
	var req ScheduleSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session, err := c.Service.Schedule(r.Context(), req.ClassDetailID, req.StartsAt, req.EndsAt)
	if err != nil {
		c.writeSchedulerError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, session)
}

// CancelSession godoc
// @Summary Cancel a scheduled lesson
// @Description Removes a session by id. Cancelling an id that no longer exists is a no-op success.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} controllers.CancelSessionSuccessResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID} [delete]
func (c *ScheduleController) CancelSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	if err := c.Service.Cancel(r.Context(), sessionID); err != nil {
		c.writeSchedulerError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CancelSessionResponse{Status: "cancelled"})
}

// parseRange reads the optional from/to query parameters (RFC-3339). Both
// must be present for the range to apply; a lone parameter is rejected.
func parseRange(r *http.Request) (from, to *time.Time, errMsg string) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" && toStr == "" {
		return nil, nil, ""
	}
	if fromStr == "" || toStr == "" {
		return nil, nil, "from and to must be provided together"
	}
	f, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		return nil, nil, "from must be an RFC-3339 timestamp"
	}
	t, err := time.Parse(time.RFC3339, toStr)
	if err != nil {
		return nil, nil, "to must be an RFC-3339 timestamp"
	}
	return &f, &t, ""
}

func (c *ScheduleController) listSessions(w http.ResponseWriter, r *http.Request, kind domain.ResourceKind, resourceID string) {
	from, to, errMsg := parseRange(r)
	if errMsg != "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, errMsg)
		return
	}
	entries, err := c.Service.List(r.Context(), kind, resourceID, from, to)
	if err != nil {
		c.writeSchedulerError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}

// ListAllSessions godoc
// @Summary List every scheduled session
// @Description Returns all sessions ordered by start time ascending, each joined with module, trainer, room, and class names. Optional from/to query parameters (RFC-3339, both required together) narrow the result to sessions intersecting the range.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param from query string false "Range start (RFC-3339)"
// @Param to query string false "Range end (RFC-3339)"
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data is an array of sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions [get]
func (c *ScheduleController) ListAllSessions(w http.ResponseWriter, r *http.Request) {
	c.listSessions(w, r, domain.ResourceAll, "")
}

// ListClassSessions godoc
// @Summary List sessions for a class
// @Description Returns the class timetable ordered by start time ascending.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param classID path string true "Class ID"
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data is an array of sessions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/class/{classID} [get]
func (c *ScheduleController) ListClassSessions(w http.ResponseWriter, r *http.Request) {
	c.listSessions(w, r, domain.ResourceClass, r.PathValue("classID"))
}

// ListTrainerSessions godoc
// @Summary List sessions for a trainer
// @Description Returns the trainer's timetable ordered by start time ascending.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param trainerID path string true "Trainer ID"
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data is an array of sessions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/trainer/{trainerID} [get]
func (c *ScheduleController) ListTrainerSessions(w http.ResponseWriter, r *http.Request) {
	c.listSessions(w, r, domain.ResourceTrainer, r.PathValue("trainerID"))
}

// ListRoomSessions godoc
// @Summary List sessions booked in a room
// @Description Returns the room occupancy ordered by start time ascending.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param roomID path string true "Room ID"
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data is an array of sessions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/room/{roomID} [get]
func (c *ScheduleController) ListRoomSessions(w http.ResponseWriter, r *http.Request) {
	c.listSessions(w, r, domain.ResourceRoom, r.PathValue("roomID"))
}
