package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// User represents a stored user record.
//
// Password holds the bcrypt hash, never the plaintext; it is excluded from
// JSON responses.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName string             `json:"firstName" bson:"firstName"`
	LastName  string             `json:"lastName" bson:"lastName"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// NewUser carries the validated fields for a user about to be created.
// Password is still plaintext here; the store hashes it at write time.
type NewUser struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UserStore defines persistence operations for users.
type UserStore interface {
	// Find returns all users. An empty collection yields ErrNotFound.
	Find(ctx context.Context) ([]User, error)
	// FindOne returns the user with the exact email, or ErrNotFound.
	FindOne(ctx context.Context, email string) (User, error)
	// Create hashes the password and inserts the record, returning it with
	// its generated ID. A duplicate email yields ErrDuplicateEmail.
	Create(ctx context.Context, in NewUser) (User, error)
}

// HashPassword produces a salted bcrypt hash of the plaintext password.
// bcrypt.DefaultCost is 10, matching the original schema's cost factor.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func CheckPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
