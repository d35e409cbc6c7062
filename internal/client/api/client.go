// Package api is a typed HTTP client for the exercise tracker backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fittrack/internal/dto"
	"fittrack/internal/models"
)

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status  int
	Message string
	Cause   string
}

func (e *APIError) Error() string {
	if e.Cause != "" && e.Cause != "No cause provided" {
		return fmt.Sprintf("%s: %s", e.Message, e.Cause)
	}
	return e.Message
}

// Client talks to the backend's JSON API.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates a Client for the given base URL, e.g. "http://localhost:5000".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken attaches a bearer token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	var resp dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/user/add", req, &resp)
	return resp, err
}

// Login authenticates and returns the issued token.
func (c *Client) Login(ctx context.Context, email, password string) (dto.AuthResponse, error) {
	var resp dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/user/login", dto.LoginRequest{Email: email, Password: password}, &resp)
	return resp, err
}

// Logout calls the stateless logout endpoint.
func (c *Client) Logout(ctx context.Context) error {
	var resp dto.MessageResponse
	return c.do(ctx, http.MethodGet, "/api/user/logout", nil, &resp)
}

// Users lists all registered users.
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := c.do(ctx, http.MethodGet, "/api/user", nil, &users)
	return users, err
}

// Exercises lists the exercise log. Requires a token.
func (c *Client) Exercises(ctx context.Context) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := c.do(ctx, http.MethodGet, "/api/exercises", nil, &exercises)
	return exercises, err
}

type exerciseEnvelope struct {
	Message  string          `json:"message"`
	Exercise models.Exercise `json:"exercise"`
}

// AddExercise logs a new exercise. Requires a token.
func (c *Client) AddExercise(ctx context.Context, req dto.ExerciseRequest) (models.Exercise, error) {
	var resp exerciseEnvelope
	err := c.do(ctx, http.MethodPost, "/api/exercises/add", req, &resp)
	return resp.Exercise, err
}

// DeleteExercise removes an exercise by id. Requires a token.
func (c *Client) DeleteExercise(ctx context.Context, id string) error {
	var resp dto.MessageResponse
	return c.do(ctx, http.MethodDelete, "/api/exercises/"+id, nil, &resp)
}

// do performs one JSON round trip. Non-2xx responses are decoded from the
// {"error": {"message", "cause"}} envelope into an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope dto.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			return &APIError{Status: resp.StatusCode, Message: resp.Status}
		}
		return &APIError{
			Status:  resp.StatusCode,
			Message: envelope.Error.Message,
			Cause:   envelope.Error.Cause,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
