package ginmw

import (
	"github.com/gin-gonic/gin"

	stdschema "github.com/reoring/stdschema"
	"github.com/reoring/stdschema/middleware"
)

// ValidateJSON parses the request JSON with s, stores the value in the request
// context, and aborts with the middleware.Reject response on failure.
func ValidateJSON[T any](s stdschema.Schema[T], opts ...middleware.Option) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := middleware.Decode(c.Request, s, opts...)
		if err != nil {
			c.AbortWithStatusJSON(middleware.Reject(c.Request, err, opts...))
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithValue(c.Request.Context(), v))
		c.Next()
	}
}

// GetValue fetches the parsed value from gin.Context.
func GetValue[T any](c *gin.Context) (T, bool) {
	return middleware.ValueFromContext[T](c.Request.Context())
}
