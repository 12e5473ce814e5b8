package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"estately/internal/service"
)

// AdminHandler handles the moderation endpoints. Routes using it are mounted
// behind the admin guard.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Dashboard godoc
// @Summary Get marketplace totals and pending moderation counts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.adminService.Dashboard(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Dashboard retrieved successfully", stats)
}

// ListUsers godoc
// @Summary List all accounts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Users retrieved successfully", users)
}

// PendingProperties godoc
// @Summary List properties awaiting approval
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Router /admin/properties/pending [get]
func (h *AdminHandler) PendingProperties(c echo.Context) error {
	properties, err := h.adminService.PendingProperties(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Pending properties retrieved successfully", properties)
}

// ApproveProperty godoc
// @Summary Approve a property listing
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /admin/properties/{id}/approve [post]
func (h *AdminHandler) ApproveProperty(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.adminService.ApproveProperty(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Property approved successfully", nil)
}

// FeatureProperty godoc
// @Summary Feature a property listing
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /admin/properties/{id}/feature [post]
func (h *AdminHandler) FeatureProperty(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.adminService.FeatureProperty(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Property featured successfully", nil)
}

// PendingReviews godoc
// @Summary List reviews awaiting approval
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Router /admin/reviews/pending [get]
func (h *AdminHandler) PendingReviews(c echo.Context) error {
	reviews, err := h.adminService.PendingReviews(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Pending reviews retrieved successfully", reviews)
}

// ApproveReview godoc
// @Summary Approve a review
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /admin/reviews/{id}/approve [post]
func (h *AdminHandler) ApproveReview(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.adminService.ApproveReview(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Review approved successfully", nil)
}

// VerifyUser godoc
// @Summary Mark a user account as verified
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /admin/users/{id}/verify [post]
func (h *AdminHandler) VerifyUser(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.adminService.VerifyUser(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "User verified successfully", nil)
}

// ActivateUser godoc
// @Summary Re-enable a deactivated account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /admin/users/{id}/activate [post]
func (h *AdminHandler) ActivateUser(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.adminService.ActivateUser(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "User activated successfully", nil)
}

// DeactivateUser godoc
// @Summary Disable an account and revoke its outstanding tokens
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /admin/users/{id}/deactivate [post]
func (h *AdminHandler) DeactivateUser(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.adminService.DeactivateUser(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "User deactivated successfully", nil)
}
