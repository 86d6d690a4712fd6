package ginmw_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	stdschema "github.com/reoring/stdschema"
	"github.com/reoring/stdschema/dsl"
	"github.com/reoring/stdschema/middleware"
	ginmw "github.com/reoring/stdschema/middleware/gin"
)

func TestValidateJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/n", ginmw.ValidateJSON(dsl.Integer(dsl.IntegerOpts{Min: dsl.Ptr[int64](1)})), func(c *gin.Context) {
		n, ok := ginmw.GetValue[int64](c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"n": n})
	})

	cases := []struct {
		body   string
		status int
		want   string
	}{
		{`5`, http.StatusOK, `"n":5`},
		{`0`, http.StatusBadRequest, `"code":"too_small"`},
		{`"x"`, http.StatusBadRequest, `"code":"invalid_type"`},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/n", strings.NewReader(tc.body)))
		if rec.Code != tc.status {
			t.Fatalf("body %s: status = %d, want %d", tc.body, rec.Code, tc.status)
		}
		if !strings.Contains(rec.Body.String(), tc.want) {
			t.Fatalf("body %s: response %s does not contain %s", tc.body, rec.Body.String(), tc.want)
		}
	}
}

func TestValidateJSON_LogsContractViolation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	async := stdschema.Func("async", func(any) stdschema.Outcome[int] {
		return stdschema.Defer(func() stdschema.Result[int] { return stdschema.Success(1) })
	})
	var logs bytes.Buffer
	r := gin.New()
	r.POST("/n", ginmw.ValidateJSON(async, middleware.WithLogger(zerolog.New(&logs))), func(c *gin.Context) {
		t.Fatal("handler must not run")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/n", strings.NewReader(`1`)))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	for _, want := range []string{`"level":"error"`, `"status":500`, `"path":"/n"`, "request body rejected"} {
		if !strings.Contains(logs.String(), want) {
			t.Fatalf("log %q does not contain %s", logs.String(), want)
		}
	}
}
