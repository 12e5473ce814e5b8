package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"estately/internal/service"
)

// ReviewHandler handles property review endpoints.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ReviewRequest represents a review create or update request.
type ReviewRequest struct {
	PropertyID uint   `json:"property_id"`
	Rating     int    `json:"rating" validate:"required"`
	Comment    string `json:"comment"`
}

// Create godoc
// @Summary Submit a review for a property
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ReviewRequest true "Review data"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}
	identity := identityFrom(c)
	review, err := h.reviewService.Create(c.Request().Context(), identity.UserID, service.ReviewInput{
		PropertyID: req.PropertyID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusCreated, "Review submitted successfully", review)
}

// ByProperty godoc
// @Summary List a property's approved reviews with rating stats
// @Tags reviews
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} Envelope
// @Router /reviews/property/{id} [get]
func (h *ReviewHandler) ByProperty(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	reviews, stats, err := h.reviewService.ListByProperty(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Reviews retrieved successfully", echo.Map{
		"reviews":        reviews,
		"total_reviews":  stats.TotalReviews,
		"average_rating": stats.AverageRating,
	})
}

// Mine godoc
// @Summary List the current user's reviews
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /reviews/my-reviews [get]
func (h *ReviewHandler) Mine(c echo.Context) error {
	identity := identityFrom(c)
	reviews, err := h.reviewService.ListMine(c.Request().Context(), identity.UserID)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Reviews retrieved successfully", reviews)
}

// Update godoc
// @Summary Edit a review, returning it to moderation
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param request body ReviewRequest true "Review data"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}
	review, err := h.reviewService.Update(c.Request().Context(), identityFrom(c), id, service.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Review updated successfully", review)
}

// Delete godoc
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.reviewService.Delete(c.Request().Context(), identityFrom(c), id); err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Review deleted successfully", nil)
}
