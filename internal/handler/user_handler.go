package handler

import (
	"net/http"
	"path"

	"github.com/labstack/echo/v4"

	"estately/internal/service"
	"estately/internal/storage"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	userService service.UserService
	store       *storage.Store
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, store *storage.Store) *UserHandler {
	return &UserHandler{userService: userService, store: store}
}

// GetProfile godoc
// @Summary Get the current user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	identity := identityFrom(c)
	user, err := h.userService.GetProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile godoc
// @Summary Update the current user's profile
// @Tags users
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string false "Name"
// @Param phone formData string false "Phone"
// @Param address formData string false "Address"
// @Param profile_picture formData file false "Profile picture"
// @Param remove_profile_picture formData bool false "Remove current picture"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	identity := identityFrom(c)
	ctx := c.Request().Context()

	current, err := h.userService.GetProfile(ctx, identity.UserID)
	if err != nil {
		return fail(c, err)
	}

	update := service.ProfileUpdate{}
	if v := c.FormValue("name"); v != "" {
		update.Name = &v
	}
	if v := c.FormValue("phone"); v != "" {
		update.Phone = &v
	}
	if v := c.FormValue("address"); v != "" {
		update.Address = &v
	}
	update.RemoveProfilePicture = c.FormValue("remove_profile_picture") == "true"

	if file, err := c.FormFile("profile_picture"); err == nil && file != nil {
		filename, err := h.store.Save(file, storage.ProfilePicturesFolder)
		if err != nil {
			return c.JSON(http.StatusBadRequest, Envelope{Status: "error", Message: err.Error()})
		}
		publicPath := storage.PublicPath(storage.ProfilePicturesFolder, filename)
		update.ProfilePicture = &publicPath
	}

	user, err := h.userService.UpdateProfile(ctx, identity.UserID, update)
	if err != nil {
		return fail(c, err)
	}

	// Clean up the replaced or removed picture file after a successful update.
	if current.ProfilePicture != nil && (update.ProfilePicture != nil || update.RemoveProfilePicture) {
		_ = h.store.Remove(storage.ProfilePicturesFolder, path.Base(*current.ProfilePicture))
	}

	return success(c, http.StatusOK, "Profile updated successfully", user)
}

// ListUsers godoc
// @Summary List regular user accounts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListRegularUsers(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Users retrieved successfully", users)
}
