package echomw_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	stdschema "github.com/reoring/stdschema"
	"github.com/reoring/stdschema/dsl"
	"github.com/reoring/stdschema/middleware"
	echomw "github.com/reoring/stdschema/middleware/echo"
)

func TestValidateJSON(t *testing.T) {
	e := echo.New()
	e.POST("/s", func(c echo.Context) error {
		s, ok := echomw.GetValue[string](c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.String(http.StatusOK, s)
	}, echomw.ValidateJSON(dsl.String(dsl.StringOpts{Max: dsl.Ptr(3)})))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/s", strings.NewReader(`"abc"`)))
	if rec.Code != http.StatusOK || rec.Body.String() != "abc" {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/s", strings.NewReader(`"abcd"`)))
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), `"too_long"`) {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestValidateJSON_LogsRejections(t *testing.T) {
	async := stdschema.Func("async", func(any) stdschema.Outcome[string] {
		return stdschema.Defer(func() stdschema.Result[string] { return stdschema.Success("") })
	})
	var logs bytes.Buffer
	e := echo.New()
	e.POST("/s", func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	}, echomw.ValidateJSON(async, middleware.WithLogger(zerolog.New(&logs))))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/s", strings.NewReader(`"x"`)))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	for _, want := range []string{`"level":"error"`, `"status":500`, "request body rejected"} {
		if !strings.Contains(logs.String(), want) {
			t.Fatalf("log %q does not contain %s", logs.String(), want)
		}
	}
}
