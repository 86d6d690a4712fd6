// Package middleware validates JSON request bodies at HTTP boundaries.
//
// ValidateJSON decodes the body with stdschema.JSONReader, validates it with a
// schema and stores the output in the request context. Invalid bodies get a
// 400 response shaped as {"issues": [...]}. Framework adapters for echo and
// gin live in their own modules under middleware/echo and middleware/gin.
package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	stdschema "github.com/reoring/stdschema"
)

// DefaultMaxBytes caps request bodies unless WithMaxBytes overrides it.
const DefaultMaxBytes int64 = 1 << 20

// ctxKeyValue is a typed context key for storing a parsed T.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyValue[T any] struct{}

// ContextWithValue attaches a parsed value to the context.
func ContextWithValue[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyValue[T]{}, v)
}

// ValueFromContext retrieves the value stored by ValidateJSON.
func ValueFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyValue[T]{}).(T)
	return v, ok
}

// Option configures ValidateJSON and Decode.
type Option func(*config)

type config struct {
	logger   zerolog.Logger
	maxBytes int64
}

func newConfig(opts []Option) config {
	c := config{logger: zerolog.Nop(), maxBytes: DefaultMaxBytes}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithLogger sets the logger used for rejected requests. The default discards.
func WithLogger(l zerolog.Logger) Option { return func(c *config) { c.logger = l } }

// WithMaxBytes caps the body size; n <= 0 removes the cap.
func WithMaxBytes(n int64) Option { return func(c *config) { c.maxBytes = n } }

// ErrorPayload shapes Issues for JSON responses.
func ErrorPayload(issues stdschema.Issues) map[string]any {
	if issues == nil {
		issues = stdschema.Issues{}
	}
	return map[string]any{"issues": issues}
}

// Decode parses the request body with s. The error is stdschema.Issues for
// bad input and *stdschema.ContractError for a misbehaving schema. Decode does
// not log; pass its error to Reject.
func Decode[T any](r *http.Request, s stdschema.Schema[T], opts ...Option) (T, error) {
	c := newConfig(opts)
	return decode(r, s, c)
}

func decode[T any](r *http.Request, s stdschema.Schema[T], c config) (T, error) {
	var opt stdschema.ParseOpt
	if c.maxBytes > 0 {
		opt.MaxBytes = c.maxBytes
	}
	return stdschema.ParseFrom(s, stdschema.JSONReader(r.Body), opt)
}

// Status maps a Decode error to an HTTP status and response body.
func Status(err error) (int, any) {
	if iss, ok := stdschema.AsIssues(err); ok {
		return http.StatusBadRequest, ErrorPayload(iss)
	}
	var ce *stdschema.ContractError
	if errors.As(err, &ce) {
		return http.StatusInternalServerError, map[string]any{"error": "schema contract violation"}
	}
	return http.StatusBadRequest, map[string]any{"error": err.Error()}
}

// Reject logs a Decode error with the request details and returns the status
// and body to answer with. Contract violations log at error level, bad input
// at info.
func Reject(r *http.Request, err error, opts ...Option) (int, any) {
	return newConfig(opts).reject(r, err)
}

func (c config) reject(r *http.Request, err error) (int, any) {
	status, body := Status(err)
	ev := c.logger.Info()
	if status >= http.StatusInternalServerError {
		ev = c.logger.Error()
	}
	ev.Err(err).Str("method", r.Method).Str("path", r.URL.Path).Int("status", status).Msg("request body rejected")
	return status, body
}

// ValidateJSON returns net/http middleware that parses the body with s and
// stores the result for ValueFromContext[T].
func ValidateJSON[T any](s stdschema.Schema[T], opts ...Option) func(http.Handler) http.Handler {
	c := newConfig(opts)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, err := decode(r, s, c)
			if err != nil {
				status, body := c.reject(r, err)
				WriteJSON(w, status, body)
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithValue(r.Context(), v)))
		})
	}
}

// Mount registers h for POST pattern on r behind ValidateJSON.
func Mount[T any](r chi.Router, pattern string, s stdschema.Schema[T], h http.HandlerFunc, opts ...Option) {
	r.With(ValidateJSON(s, opts...)).Post(pattern, h)
}

// WriteJSON writes v as a JSON response.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
