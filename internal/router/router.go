package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"estately/internal/auth"
	"estately/internal/config"
	apperrors "estately/internal/errors"
	"estately/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	denyList auth.DenyListInterface,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	propertyHandler *handler.PropertyHandler,
	categoryHandler *handler.CategoryHandler,
	locationHandler *handler.LocationHandler,
	appointmentHandler *handler.AppointmentHandler,
	favoriteHandler *handler.FavoriteHandler,
	reviewHandler *handler.ReviewHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded files are served straight from disk.
	e.Static("/static", cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	api.GET("/properties", propertyHandler.List)
	api.GET("/properties/featured", propertyHandler.Featured)
	api.GET("/properties/search", propertyHandler.Search)
	api.GET("/properties/sold", propertyHandler.Sold)
	api.GET("/properties/pending-status", propertyHandler.PendingStatus)
	api.GET("/properties/category/:id", propertyHandler.ByCategory)
	api.GET("/properties/location/:id", propertyHandler.ByLocation)
	api.GET("/properties/type/:type", propertyHandler.ByType)
	api.GET("/properties/:id", propertyHandler.Get)

	api.GET("/categories", categoryHandler.List)
	api.GET("/categories/:id", categoryHandler.Get)

	api.GET("/locations", locationHandler.List)
	api.GET("/locations/search", locationHandler.Search)
	api.GET("/locations/city/:city", locationHandler.ByCity)
	api.GET("/locations/:id", locationHandler.Get)

	api.GET("/reviews/property/:id", reviewHandler.ByProperty)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:   []byte(cfg.JWTSecret),
		TokenLookup:  "header:" + echo.HeaderAuthorization + ":Bearer ",
		ErrorHandler: jwtErrorHandler,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}), identityMiddleware(denyList))

	secured.GET("/profile", userHandler.GetProfile)
	secured.PUT("/profile", userHandler.UpdateProfile)
	secured.POST("/change-password", authHandler.ChangePassword)
	secured.GET("/users", userHandler.ListUsers)

	secured.POST("/properties", propertyHandler.Create)
	secured.GET("/my-properties", propertyHandler.Mine)
	secured.PUT("/properties/:id", propertyHandler.Update)
	secured.DELETE("/properties/:id", propertyHandler.Delete)
	secured.PUT("/properties/:id/sold", propertyHandler.MarkSold)
	secured.PUT("/properties/:id/pending", propertyHandler.MarkPending)

	secured.POST("/appointments", appointmentHandler.Create)
	secured.GET("/appointments", appointmentHandler.ListMine)
	secured.GET("/appointments/today", appointmentHandler.Today)
	secured.GET("/appointments/:id", appointmentHandler.Get)
	secured.PUT("/appointments/:id", appointmentHandler.UpdateStatus)
	secured.DELETE("/appointments/:id", appointmentHandler.Delete)

	secured.POST("/favorites", favoriteHandler.Add)
	secured.GET("/favorites", favoriteHandler.ListMine)
	secured.GET("/favorites/check/:property_id", favoriteHandler.Check)
	secured.DELETE("/favorites/:property_id", favoriteHandler.Remove)

	secured.POST("/reviews", reviewHandler.Create)
	secured.GET("/reviews/my-reviews", reviewHandler.Mine)
	secured.PUT("/reviews/:id", reviewHandler.Update)
	secured.DELETE("/reviews/:id", reviewHandler.Delete)

	// Category and location writes are admin-only; reads above stay public.
	securedAdmin := secured.Group("", requireAdmin)

	securedAdmin.POST("/categories", categoryHandler.Create)
	securedAdmin.PUT("/categories/:id", categoryHandler.Update)
	securedAdmin.DELETE("/categories/:id", categoryHandler.Delete)

	securedAdmin.POST("/locations", locationHandler.Create)
	securedAdmin.PUT("/locations/:id", locationHandler.Update)
	securedAdmin.DELETE("/locations/:id", locationHandler.Delete)

	securedAdmin.GET("/admin/dashboard", adminHandler.Dashboard)
	securedAdmin.GET("/admin/users", adminHandler.ListUsers)
	securedAdmin.GET("/admin/properties/pending", adminHandler.PendingProperties)
	securedAdmin.POST("/admin/properties/:id/approve", adminHandler.ApproveProperty)
	securedAdmin.POST("/admin/properties/:id/feature", adminHandler.FeatureProperty)
	securedAdmin.GET("/admin/reviews/pending", adminHandler.PendingReviews)
	securedAdmin.POST("/admin/reviews/:id/approve", adminHandler.ApproveReview)
	securedAdmin.POST("/admin/users/:id/verify", adminHandler.VerifyUser)
	securedAdmin.POST("/admin/users/:id/activate", adminHandler.ActivateUser)
	securedAdmin.POST("/admin/users/:id/deactivate", adminHandler.DeactivateUser)
}

// jwtErrorHandler maps token failures onto the response envelope.
func jwtErrorHandler(c echo.Context, err error) error {
	message := apperrors.ErrTokenInvalid.Error()
	switch {
	case errors.Is(err, echojwt.ErrJWTMissing):
		message = apperrors.ErrTokenMissing.Error()
	case errors.Is(err, jwt.ErrTokenExpired):
		message = apperrors.ErrTokenExpired.Error()
	}
	return c.JSON(http.StatusUnauthorized, handler.Envelope{Status: "error", Message: message})
}

// identityMiddleware resolves the verified claims into an Identity and
// rejects tokens belonging to deactivated accounts.
func identityMiddleware(denyList auth.DenyListInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return c.JSON(http.StatusUnauthorized, handler.Envelope{
					Status:  "error",
					Message: apperrors.ErrTokenInvalid.Error(),
				})
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, handler.Envelope{
					Status:  "error",
					Message: apperrors.ErrTokenInvalid.Error(),
				})
			}
			if denyList.IsDenied(c.Request().Context(), claims.UserID) {
				return c.JSON(http.StatusUnauthorized, handler.Envelope{
					Status:  "error",
					Message: apperrors.ErrAccountDeactivated.Error(),
				})
			}
			c.Set(auth.IdentityContextKey, auth.Identity{UserID: claims.UserID, Role: claims.UserRole})
			return next(c)
		}
	}
}

// requireAdmin rejects non-admin identities.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, _ := c.Get(auth.IdentityContextKey).(auth.Identity)
		if !identity.IsAdmin() {
			return c.JSON(http.StatusForbidden, handler.Envelope{
				Status:  "error",
				Message: apperrors.ErrAdminRequired.Error(),
			})
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
