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

// Users is the MongoDB-backed credential store. It owns password hashing:
// plaintext passwords never reach the collection.
type Users struct {
	col *mongo.Collection
}

// NewUsers creates a Users store over the "users" collection.
func NewUsers(db *mongo.Database) *Users {
	return &Users{col: db.Collection("users")}
}

// EnsureIndexes creates the unique index on email that backs the
// duplicate-registration check.
func (s *Users) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}
	return nil
}

// Find returns all users. An empty collection is reported as
// models.ErrNotFound rather than an empty slice.
func (s *Users) Find(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	if len(users) == 0 {
		return nil, models.ErrNotFound
	}
	return users, nil
}

// FindOne returns the user with the exact email.
func (s *Users) FindOne(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, models.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user by email: %w", err)
	}
	return user, nil
}

// Create hashes the password and inserts the record. Hashing happens here,
// exactly once per insert, so an already-hashed value is never re-hashed.
func (s *Users) Create(ctx context.Context, in models.NewUser) (models.User, error) {
	hash, err := models.HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, models.ErrDuplicateEmail
		}
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}
