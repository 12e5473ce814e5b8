package handler

import (
	"net/http"
	"path"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "estately/internal/errors"
	"estately/internal/model"
	"estately/internal/repository"
	"estately/internal/service"
	"estately/internal/storage"
)

// PropertyHandler handles property listing endpoints.
type PropertyHandler struct {
	propertyService service.PropertyService
	store           *storage.Store
}

// NewPropertyHandler creates a new property handler.
func NewPropertyHandler(propertyService service.PropertyService, store *storage.Store) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService, store: store}
}

// propertyInputFromForm parses the multipart form fields shared by create
// and update. Numeric fields that fail to parse surface as validation errors.
func propertyInputFromForm(c echo.Context) (service.PropertyInput, error) {
	var input service.PropertyInput
	input.Title = c.FormValue("property_title")
	input.Description = c.FormValue("property_description")
	input.Type = c.FormValue("property_type")
	input.Address = c.FormValue("address")

	if v := c.FormValue("price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return input, apperrors.NewValidation("Invalid price")
		}
		input.Price = price
	}
	if v := c.FormValue("bedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return input, apperrors.NewValidation("Invalid bedrooms")
		}
		input.Bedrooms = n
	}
	if v := c.FormValue("bathrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return input, apperrors.NewValidation("Invalid bathrooms")
		}
		input.Bathrooms = n
	}
	if v := c.FormValue("area_sqft"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return input, apperrors.NewValidation("Invalid area_sqft")
		}
		input.AreaSqft = f
	}
	if v := c.FormValue("year_built"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return input, apperrors.NewValidation("Invalid year_built")
		}
		input.YearBuilt = &n
	}
	if v := c.FormValue("parking_spots"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return input, apperrors.NewValidation("Invalid parking_spots")
		}
		input.ParkingSpots = n
	}
	input.HasGarden = c.FormValue("has_garden") == "true"
	input.HasPool = c.FormValue("has_pool") == "true"
	input.PetFriendly = c.FormValue("pet_friendly") == "true"
	input.Furnished = c.FormValue("furnished") == "true"

	if v := c.FormValue("category_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return input, apperrors.NewValidation("Invalid category_id")
		}
		input.CategoryID = uint(n)
	}
	if v := c.FormValue("location_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return input, apperrors.NewValidation("Invalid location_id")
		}
		input.LocationID = uint(n)
	}
	return input, nil
}

// saveImages stores the uploaded property images and returns their public paths.
func (h *PropertyHandler) saveImages(c echo.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	files := form.File["property_images"]
	paths := make([]string, 0, len(files))
	for _, file := range files {
		filename, err := h.store.Save(file, storage.PropertyImagesFolder)
		if err != nil {
			return nil, apperrors.NewValidation(err.Error())
		}
		paths = append(paths, storage.PublicPath(storage.PropertyImagesFolder, filename))
	}
	return paths, nil
}

// Create godoc
// @Summary Create a property listing
// @Tags properties
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param property_title formData string true "Title"
// @Param property_description formData string true "Description"
// @Param property_type formData string true "sale or rent"
// @Param price formData string true "Price"
// @Param category_id formData int true "Category ID"
// @Param location_id formData int true "Location ID"
// @Param property_images formData file true "Images"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	input, err := propertyInputFromForm(c)
	if err != nil {
		return fail(c, err)
	}
	images, err := h.saveImages(c)
	if err != nil {
		return fail(c, err)
	}
	input.Images = images

	property, err := h.propertyService.Create(c.Request().Context(), identityFrom(c), input)
	if err != nil {
		h.removeImages(images)
		return fail(c, err)
	}
	return success(c, http.StatusCreated, "Property created successfully", property)
}

// List godoc
// @Summary List approved properties
// @Tags properties
// @Produce json
// @Success 200 {object} Envelope
// @Router /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	listings, err := h.propertyService.ListApproved(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Properties retrieved successfully", listings)
}

// Get godoc
// @Summary Get property details
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	details, err := h.propertyService.GetDetails(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Property retrieved successfully", details)
}

// Mine godoc
// @Summary List the current user's properties
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /my-properties [get]
func (h *PropertyHandler) Mine(c echo.Context) error {
	identity := identityFrom(c)
	properties, err := h.propertyService.ListByOwner(c.Request().Context(), identity.UserID)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Properties retrieved successfully", properties)
}

// Featured godoc
// @Summary List featured properties
// @Tags properties
// @Produce json
// @Success 200 {object} Envelope
// @Router /properties/featured [get]
func (h *PropertyHandler) Featured(c echo.Context) error {
	properties, err := h.propertyService.ListFeatured(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Featured properties retrieved successfully", properties)
}

// Search godoc
// @Summary Search approved properties
// @Tags properties
// @Produce json
// @Param property_type query string false "sale or rent"
// @Param category_id query int false "Category ID"
// @Param location_id query int false "Location ID"
// @Param min_price query string false "Minimum price"
// @Param max_price query string false "Maximum price"
// @Param min_bedrooms query int false "Minimum bedrooms"
// @Param min_bathrooms query int false "Minimum bathrooms"
// @Param min_area query number false "Minimum area in sqft"
// @Param search_term query string false "Free text over title, description, address"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /properties/search [get]
func (h *PropertyHandler) Search(c echo.Context) error {
	filters, err := filtersFromQuery(c)
	if err != nil {
		return fail(c, err)
	}
	properties, err := h.propertyService.Search(c.Request().Context(), filters)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Search results retrieved successfully", properties)
}

func filtersFromQuery(c echo.Context) (repository.PropertyFilters, error) {
	var filters repository.PropertyFilters
	filters.Type = c.QueryParam("property_type")
	filters.SearchTerm = c.QueryParam("search_term")

	if v := c.QueryParam("category_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return filters, apperrors.NewValidation("Invalid category_id")
		}
		filters.CategoryID = uint(n)
	}
	if v := c.QueryParam("location_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return filters, apperrors.NewValidation("Invalid location_id")
		}
		filters.LocationID = uint(n)
	}
	if v := c.QueryParam("min_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return filters, apperrors.NewValidation("Invalid min_price")
		}
		filters.MinPrice = &d
	}
	if v := c.QueryParam("max_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return filters, apperrors.NewValidation("Invalid max_price")
		}
		filters.MaxPrice = &d
	}
	if v := c.QueryParam("min_bedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filters, apperrors.NewValidation("Invalid min_bedrooms")
		}
		filters.MinBedrooms = &n
	}
	if v := c.QueryParam("min_bathrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filters, apperrors.NewValidation("Invalid min_bathrooms")
		}
		filters.MinBathrooms = &n
	}
	if v := c.QueryParam("min_area"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, apperrors.NewValidation("Invalid min_area")
		}
		filters.MinArea = &f
	}
	return filters, nil
}

// ByCategory godoc
// @Summary List approved properties in a category
// @Tags properties
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} Envelope
// @Router /properties/category/{id} [get]
func (h *PropertyHandler) ByCategory(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	properties, err := h.propertyService.ListByCategory(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Properties retrieved successfully", properties)
}

// ByLocation godoc
// @Summary List approved properties in a location
// @Tags properties
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} Envelope
// @Router /properties/location/{id} [get]
func (h *PropertyHandler) ByLocation(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	properties, err := h.propertyService.ListByLocation(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Properties retrieved successfully", properties)
}

// ByType godoc
// @Summary List approved properties of a type
// @Tags properties
// @Produce json
// @Param type path string true "sale or rent"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /properties/type/{type} [get]
func (h *PropertyHandler) ByType(c echo.Context) error {
	properties, err := h.propertyService.ListByType(c.Request().Context(), c.Param("type"))
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Properties retrieved successfully", properties)
}

// Sold godoc
// @Summary List sold properties
// @Tags properties
// @Produce json
// @Success 200 {object} Envelope
// @Router /properties/sold [get]
func (h *PropertyHandler) Sold(c echo.Context) error {
	listings, err := h.propertyService.ListByStatus(c.Request().Context(), model.PropertyStatusSold)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Sold properties retrieved successfully", listings)
}

// PendingStatus godoc
// @Summary List properties with pending status
// @Tags properties
// @Produce json
// @Success 200 {object} Envelope
// @Router /properties/pending-status [get]
func (h *PropertyHandler) PendingStatus(c echo.Context) error {
	listings, err := h.propertyService.ListByStatus(c.Request().Context(), model.PropertyStatusPending)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Pending properties retrieved successfully", listings)
}

// Update godoc
// @Summary Update a property listing
// @Tags properties
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	input, err := propertyInputFromForm(c)
	if err != nil {
		return fail(c, err)
	}
	images, err := h.saveImages(c)
	if err != nil {
		return fail(c, err)
	}
	input.Images = images

	property, err := h.propertyService.Update(c.Request().Context(), identityFrom(c), id, input)
	if err != nil {
		h.removeImages(images)
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Property updated successfully", property)
}

// Delete godoc
// @Summary Delete a property listing
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	property, err := h.propertyService.Delete(c.Request().Context(), identityFrom(c), id)
	if err != nil {
		return fail(c, err)
	}
	h.removeImages(property.Images)
	return success(c, http.StatusOK, "Property deleted successfully", nil)
}

// MarkSold godoc
// @Summary Mark a property as sold
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Router /properties/{id}/sold [put]
func (h *PropertyHandler) MarkSold(c echo.Context) error {
	return h.changeStatus(c, model.PropertyStatusSold, "Property marked as sold")
}

// MarkPending godoc
// @Summary Mark a property as pending
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Router /properties/{id}/pending [put]
func (h *PropertyHandler) MarkPending(c echo.Context) error {
	return h.changeStatus(c, model.PropertyStatusPending, "Property marked as pending")
}

func (h *PropertyHandler) changeStatus(c echo.Context, status, message string) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	property, err := h.propertyService.ChangeStatus(c.Request().Context(), identityFrom(c), id, status)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, message, property)
}

func (h *PropertyHandler) removeImages(publicPaths []string) {
	for _, p := range publicPaths {
		_ = h.store.Remove(storage.PropertyImagesFolder, path.Base(p))
	}
}
