package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"estately/internal/service"
)

// FavoriteHandler handles saved-property endpoints.
type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// FavoriteRequest represents an add-to-favorites request.
type FavoriteRequest struct {
	PropertyID uint `json:"property_id" validate:"required"`
}

// Add godoc
// @Summary Add a property to favorites
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FavoriteRequest true "Property to favorite"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /favorites [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	var req FavoriteRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}
	identity := identityFrom(c)
	favorite, err := h.favoriteService.Add(c.Request().Context(), identity.UserID, req.PropertyID)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusCreated, "Property added to favorites", favorite)
}

// ListMine godoc
// @Summary List the current user's favorites with their properties
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /favorites [get]
func (h *FavoriteHandler) ListMine(c echo.Context) error {
	identity := identityFrom(c)
	favorites, err := h.favoriteService.ListMine(c.Request().Context(), identity.UserID)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Favorites retrieved successfully", favorites)
}

// Remove godoc
// @Summary Remove a property from favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param property_id path int true "Property ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /favorites/{property_id} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	propertyID, err := paramID(c, "property_id")
	if err != nil {
		return err
	}
	identity := identityFrom(c)
	if err := h.favoriteService.Remove(c.Request().Context(), identity.UserID, propertyID); err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Property removed from favorites", nil)
}

// Check godoc
// @Summary Check whether a property is in the current user's favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param property_id path int true "Property ID"
// @Success 200 {object} Envelope
// @Router /favorites/check/{property_id} [get]
func (h *FavoriteHandler) Check(c echo.Context) error {
	propertyID, err := paramID(c, "property_id")
	if err != nil {
		return err
	}
	identity := identityFrom(c)
	favorited, err := h.favoriteService.IsFavorited(c.Request().Context(), identity.UserID, propertyID)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Favorite status retrieved", echo.Map{"is_favorited": favorited})
}
