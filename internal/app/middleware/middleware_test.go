package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	var seen string
	router.GET("/test", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	t.Run("Should generate request ID when not provided", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("Should use provided request ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, "test-request-id")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "test-request-id", seen)
		assert.Equal(t, "test-request-id", w.Header().Get(RequestIDHeader))
	})
}

func TestCORSMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(CORS())
	router.GET("/patients/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Should answer preflight for any origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/patients/", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("Should allow arbitrary requested headers on preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/patients/", nil)
		req.Header.Set("Origin", "http://frontend.test:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "X-Custom-Trace, Content-Type")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://frontend.test:3000", w.Header().Get("Access-Control-Allow-Origin"))
		allowed := w.Header().Get("Access-Control-Allow-Headers")
		assert.Contains(t, allowed, "X-Custom-Trace")
		assert.Contains(t, allowed, "Content-Type")
		assert.Contains(t, strings.Join(w.Header().Values("Vary"), ","), "Access-Control-Request-Headers")
	})

	t.Run("Should allow any requested method on preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/patients/", nil)
		req.Header.Set("Origin", "http://frontend.test:3000")
		req.Header.Set("Access-Control-Request-Method", "purge")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		methods := w.Header().Get("Access-Control-Allow-Methods")
		assert.Contains(t, methods, "PURGE")
		assert.Contains(t, methods, http.MethodGet)
	})

	t.Run("Should echo origin on simple requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/patients/", nil)
		req.Header.Set("Origin", "https://example.org")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://example.org", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLoggerMiddlewarePassesThrough(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), Logger())
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok?x=1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMetricsInstrument(t *testing.T) {
	m := NewMetrics("test")
	router := gin.New()
	router.Use(m.Instrument())
	router.GET("/patients/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, id := range []string{"1", "2", "3"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/patients/"+id, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/patients/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))

	m.PatientsCreated.Inc()
	expected := `
# HELP test_patients_created_total Total number of patients appended via the API
# TYPE test_patients_created_total counter
test_patients_created_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "test_patients_created_total"))
}
