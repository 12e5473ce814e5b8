package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"estately/internal/service"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents a category create or update request.
type CategoryRequest struct {
	Name string `json:"category_name" validate:"required"`
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category data"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Router /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}
	category, err := h.categoryService.Create(c.Request().Context(), req.Name)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusCreated, "Category created successfully", category)
}

// List godoc
// @Summary List active categories
// @Tags categories
// @Produce json
// @Success 200 {object} Envelope
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// Get godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	category, err := h.categoryService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Category retrieved successfully", category)
}

// Update godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body CategoryRequest true "Category data"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}
	category, err := h.categoryService.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Category updated successfully", category)
}

// Delete godoc
// @Summary Deactivate a category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.categoryService.Deactivate(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Category deleted successfully", nil)
}
