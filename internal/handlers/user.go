package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"fittrack/internal/config"
	"fittrack/internal/dto"
	"fittrack/internal/logger"
	"fittrack/internal/middleware"
	"fittrack/internal/models"
	"fittrack/internal/utils"
)

var validate = validator.New()

// UserHandler handles user lifecycle HTTP requests
type UserHandler struct {
	store models.UserStore
	jwt   *config.JWTConfig
	log   *logger.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(store models.UserStore, jwtCfg *config.JWTConfig, log *logger.Logger) *UserHandler {
	return &UserHandler{store: store, jwt: jwtCfg, log: log}
}

// List returns all registered users
// @Summary List users
// @Description Return all registered users. An empty store is reported as an error.
// @Tags users
// @Produce json
// @Success 200 {array} models.User "All users"
// @Failure 400 {object} dto.ErrorResponse "No users found"
// @Router /api/user [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.Find(r.Context())
	if errors.Is(err, models.ErrNotFound) {
		// Documented contract: an empty collection is an error, not []
		utils.WriteErrorResponse(w, http.StatusBadRequest, "No users found", "")
		return
	}
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, users)
}

// Register creates a new user and issues a token
// @Summary Register a new user
// @Description Create a user account and return a signed bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 200 {object} dto.AuthResponse "User created"
// @Failure 400 {object} dto.ErrorResponse "Missing fields, password mismatch or duplicate email"
// @Failure 500 {object} dto.ErrorResponse "Token signing failure"
// @Router /api/user/add [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Error All fields are required.", err.Error())
		return
	}

	if req.Password != req.ConfirmPassword {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Passwords do not match", "")
		return
	}

	user, err := h.store.Create(r.Context(), models.NewUser{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	token, err := middleware.GenerateToken(user.ID.Hex(), user.Email, h.jwt)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Error signing token", err.Error())
		return
	}

	h.log.Info("user created", "user_id", user.ID.Hex(), "email", user.Email)

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		Message:   "User created",
		Token:     token,
		UserID:    user.ID.Hex(),
		UserEmail: user.Email,
	})
}

// Login authenticates a user and issues a token
// @Summary Login
// @Description Authenticate with email and password and return a signed bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "User login successful"
// @Failure 401 {object} dto.ErrorResponse "Unknown user, wrong password or missing fields"
// @Failure 500 {object} dto.ErrorResponse "Token signing failure"
// @Router /api/user/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "All fields are required", "")
		return
	}

	user, err := h.store.FindOne(r.Context(), req.Email)
	if errors.Is(err, models.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not found")
		return
	}
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}

	if !models.CheckPassword(user.Password, req.Password) {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Password is incorrect")
		return
	}

	token, err := middleware.GenerateToken(user.ID.Hex(), user.Email, h.jwt)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Error logging in user", err.Error())
		return
	}

	h.log.Info("user login successful", "user_id", user.ID.Hex())

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		Message:   "User login successful",
		Token:     token,
		UserID:    user.ID.Hex(),
		UserEmail: user.Email,
	})
}

// Logout confirms logout
// @Summary Logout
// @Description Stateless logout confirmation. Issued tokens stay valid until expiry.
// @Tags users
// @Produce json
// @Success 200 {object} dto.MessageResponse "User logged out"
// @Router /api/user/logout [get]
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// No server-side token state exists, so there is nothing to invalidate.
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "User logged out"})
}
