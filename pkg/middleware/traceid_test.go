package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readandlead/pkg/middleware"
)

func newTraceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})
	return r
}

// TestTraceIDMiddleware_MintsID verifies a request without a trace header
// gets a fresh id, exposed both in the context and the response header.
func TestTraceIDMiddleware_MintsID(t *testing.T) {
	r := newTraceRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	header := rec.Header().Get("X-Trace-ID")
	assert.NotEmpty(t, header)
	assert.Equal(t, header, rec.Body.String())
}

// TestTraceIDMiddleware_ReusesInboundID verifies a caller-supplied
// X-Trace-ID is carried through instead of being replaced.
func TestTraceIDMiddleware_ReusesInboundID(t *testing.T) {
	r := newTraceRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Trace-ID", "client-trace-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "client-trace-42", rec.Header().Get("X-Trace-ID"))
	assert.Equal(t, "client-trace-42", rec.Body.String())
}
