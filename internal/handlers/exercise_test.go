package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fittrack/internal/dto"
	"fittrack/internal/logger"
	"fittrack/internal/models"
)

// fakeExerciseStore is an in-memory ExerciseStore.
type fakeExerciseStore struct {
	exercises []models.Exercise
}

func (f *fakeExerciseStore) Find(ctx context.Context) ([]models.Exercise, error) {
	out := make([]models.Exercise, len(f.exercises))
	copy(out, f.exercises)
	return out, nil
}

func (f *fakeExerciseStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Exercise, error) {
	for _, e := range f.exercises {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Exercise{}, models.ErrNotFound
}

func (f *fakeExerciseStore) Create(ctx context.Context, in models.ExerciseUpdate) (models.Exercise, error) {
	now := time.Now().UTC()
	e := models.Exercise{
		ID:          primitive.NewObjectID(),
		Username:    in.Username,
		Description: in.Description,
		Duration:    in.Duration,
		Date:        in.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.exercises = append(f.exercises, e)
	return e, nil
}

func (f *fakeExerciseStore) Update(ctx context.Context, id primitive.ObjectID, in models.ExerciseUpdate) (models.Exercise, error) {
	for i, e := range f.exercises {
		if e.ID == id {
			e.Username = in.Username
			e.Description = in.Description
			e.Duration = in.Duration
			e.Date = in.Date
			e.UpdatedAt = time.Now().UTC()
			f.exercises[i] = e
			return e, nil
		}
	}
	return models.Exercise{}, models.ErrNotFound
}

func (f *fakeExerciseStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, e := range f.exercises {
		if e.ID == id {
			f.exercises = append(f.exercises[:i], f.exercises[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func newExerciseHandler(store models.ExerciseStore) *ExerciseHandler {
	return NewExerciseHandler(store, logger.New(8))
}

func exerciseRequest() dto.ExerciseRequest {
	return dto.ExerciseRequest{
		Username:    "ada",
		Description: "Morning run",
		Duration:    30,
		Date:        "2024-05-01",
	}
}

func TestExerciseCreate_Success(t *testing.T) {
	store := &fakeExerciseStore{}
	h := newExerciseHandler(store)

	rec := postJSON(t, h.Create, "/api/exercises/add", exerciseRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, store.exercises, 1)
	require.Equal(t, "Morning run", store.exercises[0].Description)
	require.Equal(t, 30, store.exercises[0].Duration)
}

func TestExerciseCreate_AcceptsRFC3339Date(t *testing.T) {
	store := &fakeExerciseStore{}
	h := newExerciseHandler(store)

	req := exerciseRequest()
	req.Date = "2024-05-01T07:30:00Z"

	rec := postJSON(t, h.Create, "/api/exercises/add", req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.exercises, 1)
}

func TestExerciseCreate_InvalidDate(t *testing.T) {
	store := &fakeExerciseStore{}
	h := newExerciseHandler(store)

	req := exerciseRequest()
	req.Date = "yesterday"

	rec := postJSON(t, h.Create, "/api/exercises/add", req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, store.exercises)
}

func TestExerciseCreate_MissingFields(t *testing.T) {
	store := &fakeExerciseStore{}
	h := newExerciseHandler(store)

	req := exerciseRequest()
	req.Description = ""

	rec := postJSON(t, h.Create, "/api/exercises/add", req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExerciseList(t *testing.T) {
	store := &fakeExerciseStore{}
	_, err := store.Create(context.Background(), models.ExerciseUpdate{
		Username: "ada", Description: "Swim", Duration: 45, Date: time.Now(),
	})
	require.NoError(t, err)

	h := newExerciseHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/exercises", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var exercises []models.Exercise
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exercises))
	require.Len(t, exercises, 1)
	require.Equal(t, "Swim", exercises[0].Description)
}

func TestExerciseGet_InvalidID(t *testing.T) {
	h := newExerciseHandler(&fakeExerciseStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/exercises/nope", nil)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExerciseGet_NotFound(t *testing.T) {
	h := newExerciseHandler(&fakeExerciseStore{})

	id := primitive.NewObjectID().Hex()
	req := httptest.NewRequest(http.MethodGet, "/api/exercises/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExerciseUpdate(t *testing.T) {
	store := &fakeExerciseStore{}
	created, err := store.Create(context.Background(), models.ExerciseUpdate{
		Username: "ada", Description: "Swim", Duration: 45, Date: time.Now(),
	})
	require.NoError(t, err)

	h := newExerciseHandler(store)

	body := exerciseRequest()
	body.Description = "Long swim"

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/exercises/update/"+created.ID.Hex(), bytes.NewReader(data))
	req.SetPathValue("id", created.ID.Hex())
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Long swim", store.exercises[0].Description)
}

func TestExerciseUpdate_NotFound(t *testing.T) {
	h := newExerciseHandler(&fakeExerciseStore{})

	id := primitive.NewObjectID().Hex()
	data, err := json.Marshal(exerciseRequest())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/exercises/update/"+id, bytes.NewReader(data))
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExerciseDelete(t *testing.T) {
	store := &fakeExerciseStore{}
	created, err := store.Create(context.Background(), models.ExerciseUpdate{
		Username: "ada", Description: "Swim", Duration: 45, Date: time.Now(),
	})
	require.NoError(t, err)

	h := newExerciseHandler(store)

	req := httptest.NewRequest(http.MethodDelete, "/api/exercises/"+created.ID.Hex(), nil)
	req.SetPathValue("id", created.ID.Hex())
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, store.exercises)
}
