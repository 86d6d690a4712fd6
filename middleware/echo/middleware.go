package echomw

import (
	"github.com/labstack/echo/v4"

	stdschema "github.com/reoring/stdschema"
	"github.com/reoring/stdschema/middleware"
)

// ValidateJSON parses request JSON via schema s, stores the value in the
// request context on success, or responds with the middleware.Reject payload.
func ValidateJSON[T any](s stdschema.Schema[T], opts ...middleware.Option) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v, err := middleware.Decode(c.Request(), s, opts...)
			if err != nil {
				return c.JSON(middleware.Reject(c.Request(), err, opts...))
			}
			c.SetRequest(c.Request().WithContext(middleware.ContextWithValue(c.Request().Context(), v)))
			return next(c)
		}
	}
}

// GetValue fetches the parsed value from echo.Context.
func GetValue[T any](c echo.Context) (T, bool) {
	return middleware.ValueFromContext[T](c.Request().Context())
}
