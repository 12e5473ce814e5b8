package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"estately/internal/service"
)

// LocationHandler handles location endpoints.
type LocationHandler struct {
	locationService service.LocationService
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(locationService service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// LocationRequest represents a location create or update request.
type LocationRequest struct {
	Name      string   `json:"location_name"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Country   string   `json:"country"`
	ZipCode   *string  `json:"zip_code"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r LocationRequest) toInput() service.LocationInput {
	return service.LocationInput{
		Name:      r.Name,
		City:      r.City,
		State:     r.State,
		Country:   r.Country,
		ZipCode:   r.ZipCode,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

// Create godoc
// @Summary Create a location
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LocationRequest true "Location data"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Router /locations [post]
func (h *LocationHandler) Create(c echo.Context) error {
	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}
	location, err := h.locationService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusCreated, "Location created successfully", location)
}

// List godoc
// @Summary List active locations
// @Tags locations
// @Produce json
// @Success 200 {object} Envelope
// @Router /locations [get]
func (h *LocationHandler) List(c echo.Context) error {
	locations, err := h.locationService.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Locations retrieved successfully", locations)
}

// Get godoc
// @Summary Get a location
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /locations/{id} [get]
func (h *LocationHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	location, err := h.locationService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Location retrieved successfully", location)
}

// ByCity godoc
// @Summary List locations in a city
// @Tags locations
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} Envelope
// @Router /locations/city/{city} [get]
func (h *LocationHandler) ByCity(c echo.Context) error {
	locations, err := h.locationService.ByCity(c.Request().Context(), c.Param("city"))
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Locations retrieved successfully", locations)
}

// Search godoc
// @Summary Search locations by name, city or state
// @Tags locations
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /locations/search [get]
func (h *LocationHandler) Search(c echo.Context) error {
	locations, err := h.locationService.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Locations retrieved successfully", locations)
}

// Update godoc
// @Summary Update a location
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Param request body LocationRequest true "Location data"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /locations/{id} [put]
func (h *LocationHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}
	location, err := h.locationService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Location updated successfully", location)
}

// Delete godoc
// @Summary Deactivate a location
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /locations/{id} [delete]
func (h *LocationHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.locationService.Deactivate(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Location deleted successfully", nil)
}
