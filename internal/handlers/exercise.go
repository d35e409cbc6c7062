package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fittrack/internal/dto"
	"fittrack/internal/logger"
	"fittrack/internal/models"
	"fittrack/internal/utils"
)

// ExerciseHandler handles exercise CRUD requests. All routes sit behind the
// auth middleware.
type ExerciseHandler struct {
	store models.ExerciseStore
	log   *logger.Logger
}

// NewExerciseHandler creates a new ExerciseHandler instance
func NewExerciseHandler(store models.ExerciseStore, log *logger.Logger) *ExerciseHandler {
	return &ExerciseHandler{store: store, log: log}
}

// parseDate accepts RFC3339 timestamps or plain YYYY-MM-DD dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// List returns all exercises
// @Summary List exercises
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Exercise "All exercises"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/exercises [get]
func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.store.Find(r.Context())
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, exercises)
}

// Get returns a single exercise
// @Summary Get exercise
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} models.Exercise "The exercise"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Exercise not found"
// @Router /api/exercises/{id} [get]
func (h *ExerciseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid exercise id", err.Error())
		return
	}

	exercise, err := h.store.FindByID(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Exercise not found", "")
		return
	}
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, exercise)
}

// Create logs a new exercise
// @Summary Add exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ExerciseRequest true "Exercise data"
// @Success 200 {object} dto.ExerciseResponse "Exercise added"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid fields"
// @Router /api/exercises/add [post]
func (h *ExerciseHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeExercise(w, r)
	if !ok {
		return
	}

	exercise, err := h.store.Create(r.Context(), in)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	h.log.Info("exercise added", "exercise_id", exercise.ID.Hex(), "username", exercise.Username)

	utils.WriteJSONResponse(w, http.StatusOK, dto.ExerciseResponse{
		Message:  "Exercise added",
		Exercise: exercise,
	})
}

// Update replaces an exercise's fields
// @Summary Update exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Param request body dto.ExerciseRequest true "Exercise data"
// @Success 200 {object} dto.ExerciseResponse "Exercise updated"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid fields"
// @Failure 404 {object} dto.ErrorResponse "Exercise not found"
// @Router /api/exercises/update/{id} [post]
func (h *ExerciseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid exercise id", err.Error())
		return
	}

	in, ok := h.decodeExercise(w, r)
	if !ok {
		return
	}

	exercise, err := h.store.Update(r.Context(), id, in)
	if errors.Is(err, models.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Exercise not found", "")
		return
	}
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ExerciseResponse{
		Message:  "Exercise updated",
		Exercise: exercise,
	})
}

// Delete removes an exercise
// @Summary Delete exercise
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} dto.MessageResponse "Exercise deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Exercise not found"
// @Router /api/exercises/{id} [delete]
func (h *ExerciseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid exercise id", err.Error())
		return
	}

	err = h.store.Delete(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Exercise not found", "")
		return
	}
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Exercise deleted"})
}

// decodeExercise decodes and validates the request body, writing the error
// response itself when validation fails.
func (h *ExerciseHandler) decodeExercise(w http.ResponseWriter, r *http.Request) (models.ExerciseUpdate, bool) {
	var req dto.ExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return models.ExerciseUpdate{}, false
	}

	if err := validate.Struct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "All fields are required", err.Error())
		return models.ExerciseUpdate{}, false
	}

	date, err := parseDate(req.Date)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid date format", "Use RFC3339 or YYYY-MM-DD")
		return models.ExerciseUpdate{}, false
	}

	return models.ExerciseUpdate{
		Username:    req.Username,
		Description: req.Description,
		Duration:    req.Duration,
		Date:        date,
	}, true
}
