package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"storefront/internal/auth"
	"storefront/internal/config"
	apperrors "storefront/internal/errors"
	"storefront/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	itemHandler *handler.ItemHandler,
	cartHandler *handler.CartHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/signin", authHandler.Signin)
	api.POST("/auth/signout", authHandler.Signout)
	api.POST("/auth/reset/request", authHandler.RequestReset)
	api.POST("/auth/reset", authHandler.ResetPassword)

	// Public item reads
	api.GET("/items", itemHandler.ListItems)
	api.GET("/items/:id", itemHandler.GetItem)

	// Secured routes: the session travels as an HTTP-only cookie, not an
	// Authorization header.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.AppSecret),
		TokenLookup: "cookie:" + handler.SessionCookieName,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.SessionClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrAuthenticationRequired)
			return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	}))

	secured.GET("/me", userHandler.Me)
	secured.GET("/users", userHandler.ListUsers)
	secured.PUT("/users/:id/permissions", userHandler.UpdatePermissions)

	secured.POST("/items", itemHandler.CreateItem)
	secured.PUT("/items/:id", itemHandler.UpdateItem)
	secured.DELETE("/items/:id", itemHandler.DeleteItem)

	secured.POST("/cart", cartHandler.AddToCart)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
