package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/khatasathi/inventory-admin/internal/auth"
	"github.com/khatasathi/inventory-admin/internal/http/middleware"
	"github.com/khatasathi/inventory-admin/internal/models"
	"github.com/khatasathi/inventory-admin/internal/repo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterAsAdminHandler godoc
// @Summary Create user with custom role
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param user body RegisterAsAdminRequest true "User to create with role"
// @Success 201 {object} map[string]string
// @Failure 400 {string} string "Invalid input"
// @Failure 403 {string} string "Forbidden"
// @Failure 409 {string} string "User exists"
// @Failure 500 {string} string "Server error"
// @Router /api/admin/users [post]
func RegisterAsAdminHandler(w http.ResponseWriter, r *http.Request) {
	if middleware.GetRole(r) != models.RoleAdmin {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var req RegisterAsAdminRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}
	if req.Role == "" {
		req.Role = models.RoleUser
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleUser {
		http.Error(w, "role must be admin or user", http.StatusBadRequest)
		return
	}

	if _, err := CreateUser(r.Context(), req.Username, req.Password, req.Role); err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "username already exists", http.StatusConflict)
			return
		}
		zap.L().Error("create user", zap.String("username", req.Username), zap.Error(err))
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "User created"})
}

// LoginHandler godoc
// @Summary Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /api/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials CredentialsRequest
	if err := readJSON(w, r, &credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByUsername(r.Context(), strings.TrimSpace(credentials.Username))
	if err != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)) != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, LoginResult{Token: token})
}

// CreateUser hashes the password and stores a new user.
func CreateUser(ctx context.Context, username, password, role string) (models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	return userRepo.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         role,
	})
}

// SeedAdmin makes sure an admin account exists. An existing account is left untouched.
func SeedAdmin(ctx context.Context, username, password string) error {
	if password == "" {
		return errors.New("admin password is empty")
	}
	if _, err := userRepo.GetByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, repo.ErrUserNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}
	if _, err := CreateUser(ctx, username, password, models.RoleAdmin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}
