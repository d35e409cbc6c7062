package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"fittrack/internal/config"
	"fittrack/internal/handlers"
	"fittrack/internal/middleware"
	"fittrack/internal/utils"
)

// SetupRoutes configures all application routes on the given mux.
// User routes are public; the exercise log sits behind the auth middleware.
func SetupRoutes(
	mux *http.ServeMux,
	userHandler *handlers.UserHandler,
	exerciseHandler *handlers.ExerciseHandler,
	healthHandler *handlers.HealthHandler,
	jwtCfg *config.JWTConfig,
) {
	// Health check routes
	mux.HandleFunc("GET /healthz", healthHandler.HealthCheck)
	mux.HandleFunc("GET /readyz", healthHandler.ReadinessCheck)

	// User routes
	mux.HandleFunc("GET /api/user", userHandler.List)
	mux.HandleFunc("POST /api/user/add", userHandler.Register)
	mux.HandleFunc("POST /api/user/login", userHandler.Login)
	mux.HandleFunc("GET /api/user/logout", userHandler.Logout)

	// Exercise routes (protected)
	mux.HandleFunc("GET /api/exercises", middleware.AuthMiddleware(exerciseHandler.List, jwtCfg))
	mux.HandleFunc("POST /api/exercises/add", middleware.AuthMiddleware(exerciseHandler.Create, jwtCfg))
	mux.HandleFunc("GET /api/exercises/{id}", middleware.AuthMiddleware(exerciseHandler.Get, jwtCfg))
	mux.HandleFunc("DELETE /api/exercises/{id}", middleware.AuthMiddleware(exerciseHandler.Delete, jwtCfg))
	mux.HandleFunc("POST /api/exercises/update/{id}", middleware.AuthMiddleware(exerciseHandler.Update, jwtCfg))

	// Swagger UI
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Browsers ask for this constantly; answer with 204 instead of a 404 body
	mux.HandleFunc("/favicon.ico", faviconHandler)

	// Everything else is a JSON 404
	mux.HandleFunc("/", notFoundHandler)
}

func faviconHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "")
}
