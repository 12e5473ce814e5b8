package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"estately/internal/service"
)

// AppointmentHandler handles viewing appointment endpoints.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// AppointmentRequest represents an appointment creation request.
type AppointmentRequest struct {
	PropertyID uint   `json:"property_id" validate:"required"`
	SellerID   uint   `json:"seller_id" validate:"required"`
	Date       string `json:"appointment_date" validate:"required"`
	Time       string `json:"appointment_time" validate:"required"`
	Message    string `json:"message"`
}

// AppointmentStatusRequest represents an appointment status update request.
type AppointmentStatusRequest struct {
	Status string `json:"appointment_status" validate:"required"`
}

// Create godoc
// @Summary Schedule a viewing appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AppointmentRequest true "Appointment data"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}

	appointment, err := h.appointmentService.Create(c.Request().Context(), identityFrom(c), service.AppointmentInput{
		PropertyID: req.PropertyID,
		SellerID:   req.SellerID,
		Date:       req.Date,
		Time:       req.Time,
		Message:    req.Message,
	})
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusCreated, "Appointment created successfully", appointment)
}

// ListMine godoc
// @Summary List the current user's appointments as buyer and seller
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /appointments [get]
func (h *AppointmentHandler) ListMine(c echo.Context) error {
	identity := identityFrom(c)
	appointments, err := h.appointmentService.ListMine(c.Request().Context(), identity.UserID)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// Get godoc
// @Summary Get an appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	appointment, err := h.appointmentService.Get(c.Request().Context(), identityFrom(c), id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// UpdateStatus godoc
// @Summary Update an appointment's status
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Param request body AppointmentStatusRequest true "New status"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req AppointmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}

	appointment, err := h.appointmentService.UpdateStatus(c.Request().Context(), identityFrom(c), id, req.Status)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Appointment updated successfully", appointment)
}

// Delete godoc
// @Summary Delete a pending appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.appointmentService.Delete(c.Request().Context(), identityFrom(c), id); err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Appointment deleted successfully", nil)
}

// Today godoc
// @Summary List the current user's appointments for today
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /appointments/today [get]
func (h *AppointmentHandler) Today(c echo.Context) error {
	identity := identityFrom(c)
	appointments, err := h.appointmentService.Today(c.Request().Context(), identity.UserID)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, "Appointments retrieved successfully", appointments)
}
