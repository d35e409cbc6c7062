package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fittrack/internal/models"
)

// Exercises is the MongoDB-backed exercise store.
type Exercises struct {
	col *mongo.Collection
}

// NewExercises creates an Exercises store over the "exercises" collection.
func NewExercises(db *mongo.Database) *Exercises {
	return &Exercises{col: db.Collection("exercises")}
}

// Find returns all exercises, newest first. Unlike the user listing, an
// empty collection is a legitimate empty slice.
func (s *Exercises) Find(ctx context.Context) ([]models.Exercise, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query exercises: %w", err)
	}

	exercises := []models.Exercise{}
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, fmt.Errorf("failed to decode exercises: %w", err)
	}
	return exercises, nil
}

// FindByID returns a single exercise by its ObjectID.
func (s *Exercises) FindByID(ctx context.Context, id primitive.ObjectID) (models.Exercise, error) {
	var exercise models.Exercise
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&exercise)
	if err == mongo.ErrNoDocuments {
		return models.Exercise{}, models.ErrNotFound
	}
	if err != nil {
		return models.Exercise{}, fmt.Errorf("failed to query exercise: %w", err)
	}
	return exercise, nil
}

// Create inserts a new exercise and returns it with its generated ID.
func (s *Exercises) Create(ctx context.Context, in models.ExerciseUpdate) (models.Exercise, error) {
	now := time.Now().UTC()
	exercise := models.Exercise{
		ID:          primitive.NewObjectID(),
		Username:    in.Username,
		Description: in.Description,
		Duration:    in.Duration,
		Date:        in.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.col.InsertOne(ctx, exercise); err != nil {
		return models.Exercise{}, fmt.Errorf("failed to insert exercise: %w", err)
	}
	return exercise, nil
}

// Update replaces the mutable fields of an exercise and returns the
// updated record.
func (s *Exercises) Update(ctx context.Context, id primitive.ObjectID, in models.ExerciseUpdate) (models.Exercise, error) {
	update := bson.M{"$set": bson.M{
		"username":    in.Username,
		"description": in.Description,
		"duration":    in.Duration,
		"date":        in.Date,
		"updatedAt":   time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var exercise models.Exercise
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&exercise)
	if err == mongo.ErrNoDocuments {
		return models.Exercise{}, models.ErrNotFound
	}
	if err != nil {
		return models.Exercise{}, fmt.Errorf("failed to update exercise: %w", err)
	}
	return exercise, nil
}

// Delete removes an exercise by ID.
func (s *Exercises) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete exercise: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
