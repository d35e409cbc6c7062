package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise represents a logged workout session.
type Exercise struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username    string             `json:"username" bson:"username"`
	Description string             `json:"description" bson:"description"`
	// Duration is measured in minutes.
	Duration  int       `json:"duration" bson:"duration"`
	Date      time.Time `json:"date" bson:"date"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ExerciseUpdate carries the mutable fields of an exercise.
type ExerciseUpdate struct {
	Username    string
	Description string
	Duration    int
	Date        time.Time
}

// ExerciseStore defines persistence operations for exercises.
type ExerciseStore interface {
	Find(ctx context.Context) ([]Exercise, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (Exercise, error)
	Create(ctx context.Context, in ExerciseUpdate) (Exercise, error)
	Update(ctx context.Context, id primitive.ObjectID, in ExerciseUpdate) (Exercise, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
