package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"weathervault/internal/auth"
	"weathervault/internal/http/respond"
	"weathervault/internal/models"
	"weathervault/internal/models/dto"
	"weathervault/internal/storage"
)

var validate = validator.New()

// AuthHandler owns the register and login endpoints.
type AuthHandler struct {
	store  storage.UserStore
	tokens *auth.TokenManager
	logger *zap.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, logger: logger}
}

// Register creates a user with a freshly hashed password and responds with a
// token for the new identity.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	if _, err := h.store.FindByUsername(r.Context(), req.Username); err == nil {
		respond.Error(w, http.StatusBadRequest, "Username already exists")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	created, err := h.store.CreateUser(r.Context(), models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		// A racing registration can still hit the unique constraint.
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Error(w, http.StatusBadRequest, "Username already exists")
			return
		}
		h.logger.Error("create user failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := h.tokens.Issue(created.ID)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusCreated, dto.TokenResponse{Token: token})
}

// Login verifies credentials and responds with a fresh token. Unknown user
// and wrong password produce the identical 401 so usernames cannot be
// enumerated.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.store.FindByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error("fetch user failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, dto.TokenResponse{Token: token})
}
