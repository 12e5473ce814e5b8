package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"estately/internal/service"
	"estately/internal/storage"
)

// AuthHandler handles registration, login and password changes.
type AuthHandler struct {
	authService service.AuthService
	store       *storage.Store
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, store *storage.Store) *AuthHandler {
	return &AuthHandler{authService: authService, store: store}
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
	Phone    string `json:"phone" form:"phone"`
	Address  string `json:"address" form:"address"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest represents a password change request.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Accept mpfd
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}

	input := service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	}

	// Multipart registrations may carry a profile picture.
	if file, err := c.FormFile("profile_picture"); err == nil && file != nil {
		filename, err := h.store.Save(file, storage.ProfilePicturesFolder)
		if err != nil {
			return c.JSON(http.StatusBadRequest, Envelope{Status: "error", Message: err.Error()})
		}
		path := storage.PublicPath(storage.ProfilePicturesFolder, filename)
		input.ProfilePicture = &path
	}

	user, err := h.authService.Register(c.Request().Context(), input)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusCreated, "User registered successfully", user)
}

// Login godoc
// @Summary Authenticate and obtain a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Status: "error", Message: "Email and password are required"})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Login successful", echo.Map{
		"token": token,
		"user":  user,
	})
}

// ChangePassword godoc
// @Summary Change the current user's password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Password change data"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Status: "error", Message: "Current and new passwords are required"})
	}

	identity := identityFrom(c)
	if err := h.authService.ChangePassword(c.Request().Context(), identity.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Password changed successfully", nil)
}
