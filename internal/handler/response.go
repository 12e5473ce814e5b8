package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"estately/internal/auth"
	apperrors "estately/internal/errors"
)

// Envelope is the response shape every endpoint answers with.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, Envelope{Status: "success", Message: message, Data: data})
}

func fail(c echo.Context, err error) error {
	return c.JSON(apperrors.StatusFor(err), Envelope{Status: "error", Message: err.Error()})
}

// failBind answers a request body echo could not bind; the envelope shape is
// kept for this case too.
func failBind(c echo.Context) error {
	return fail(c, apperrors.NewValidation("Invalid request body"))
}

// identityFrom returns the authenticated identity placed in the context by
// the JWT middleware.
func identityFrom(c echo.Context) auth.Identity {
	identity, _ := c.Get(auth.IdentityContextKey).(auth.Identity)
	return identity
}

func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, Envelope{
			Status:  "error",
			Message: "Invalid " + name + " parameter",
		})
	}
	return uint(id), nil
}
