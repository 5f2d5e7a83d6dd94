package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"academyscheduler/internal/delivery/http/controllers"
	"academyscheduler/internal/delivery/http/middleware"
	"academyscheduler/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Everything except signup, login, and the swagger UI requires a Bearer token.
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	scheduleController *controllers.ScheduleController,
	classDetailController *controllers.ClassDetailController,
	catalogController *controllers.CatalogController,
	authController *controllers.AuthController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Sessions
	mux.HandleFunc("POST /sessions", auth(scheduleController.ScheduleSession))
	mux.HandleFunc("DELETE /sessions/{sessionID}", auth(scheduleController.CancelSession))
	mux.HandleFunc("GET /sessions", auth(scheduleController.ListAllSessions))
	mux.HandleFunc("GET /sessions/class/{classID}", auth(scheduleController.ListClassSessions))
	mux.HandleFunc("GET /sessions/trainer/{trainerID}", auth(scheduleController.ListTrainerSessions))
	mux.HandleFunc("GET /sessions/room/{roomID}", auth(scheduleController.ListRoomSessions))

	// Class curriculum
	mux.HandleFunc("POST /classes/{classID}/modules", auth(classDetailController.AttachModule))
	mux.HandleFunc("GET /classes/{classID}/modules", auth(classDetailController.ListClassModules))
	mux.HandleFunc("DELETE /class-details/{detailID}", auth(classDetailController.DetachModule))

	// Catalog
	mux.HandleFunc("POST /rooms", auth(catalogController.CreateRoom))
	mux.HandleFunc("GET /rooms", auth(catalogController.ListRooms))
	mux.HandleFunc("DELETE /rooms/{roomID}", auth(catalogController.DeleteRoom))
	mux.HandleFunc("POST /trainers", auth(catalogController.CreateTrainer))
	mux.HandleFunc("GET /trainers", auth(catalogController.ListTrainers))
	mux.HandleFunc("DELETE /trainers/{trainerID}", auth(catalogController.DeleteTrainer))
	mux.HandleFunc("POST /modules", auth(catalogController.CreateModule))
	mux.HandleFunc("GET /modules", auth(catalogController.ListModules))
	mux.HandleFunc("DELETE /modules/{moduleID}", auth(catalogController.DeleteModule))
	mux.HandleFunc("POST /classes", auth(catalogController.CreateClass))
	mux.HandleFunc("GET /classes", auth(catalogController.ListClasses))
	mux.HandleFunc("DELETE /classes/{classID}", auth(catalogController.DeleteClass))

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
