package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"fittrack/internal/dto"
)

func TestLogin_DecodesAuthResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/user/login", r.URL.Path)

		var req dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "ada@example.com", req.Email)

		json.NewEncoder(w).Encode(dto.AuthResponse{
			Message: "User login successful",
			Token:   "header.payload.sig",
			UserID:  "65f1c3b2a4d5e6f7a8b9c0d1",
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	resp, err := client.Login(context.Background(), "ada@example.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, "User login successful", resp.Message)
	require.Equal(t, "header.payload.sig", resp.Token)
}

func TestDo_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]any{})
	}))
	defer srv.Close()

	client := New(srv.URL)
	client.SetToken("my-token")

	_, err := client.Exercises(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer my-token", gotAuth)
}

func TestDo_NoTokenNoHeader(t *testing.T) {
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		json.NewEncoder(w).Encode([]any{})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Users(context.Background())
	require.NoError(t, err)
	require.False(t, hasAuth)
}

func TestDo_DecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(dto.ErrorResponse{
			Error: dto.ErrorDetail{Message: "Unauthorized", Cause: "Password is incorrect"},
		})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Login(context.Background(), "ada@example.com", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "Unauthorized", apiErr.Message)
	require.Equal(t, "Password is incorrect", apiErr.Cause)
	require.Equal(t, "Unauthorized: Password is incorrect", apiErr.Error())
}

func TestDo_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Users(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestAPIError_SuppressesDefaultCause(t *testing.T) {
	err := &APIError{Status: 400, Message: "No users found", Cause: "No cause provided"}
	require.Equal(t, "No users found", err.Error())
}
