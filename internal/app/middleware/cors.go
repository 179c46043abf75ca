package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS разрешает любые origin, методы и заголовки. С credentials браузер не
// принимает "*", поэтому origin, а на preflight еще и запрошенные заголовки
// и метод, возвращаются клиенту как есть.
func CORS() gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	return func(c *gin.Context) {
		if isPreflight(c.Request) {
			c.Writer = &preflightWriter{
				ResponseWriter: c.Writer,
				headers:        strings.TrimSpace(c.GetHeader("Access-Control-Request-Headers")),
				method:         strings.ToUpper(strings.TrimSpace(c.GetHeader("Access-Control-Request-Method"))),
			}
		}
		handler(c)
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions &&
		r.Header.Get("Origin") != "" &&
		r.Header.Get("Access-Control-Request-Method") != ""
}

// preflightWriter дописывает запрошенные заголовки и метод в ответ на
// preflight перед отправкой статуса.
type preflightWriter struct {
	gin.ResponseWriter
	headers string
	method  string
	granted bool
}

func (w *preflightWriter) grant() {
	if w.granted {
		return
	}
	w.granted = true

	h := w.Header()
	if w.headers != "" {
		h.Set("Access-Control-Allow-Headers", w.headers)
		// срезы preflight-заголовков общие для всех запросов, поэтому копия
		if vary := h.Values("Vary"); !containsToken(strings.Join(vary, ","), "Access-Control-Request-Headers") {
			h["Vary"] = append(append([]string(nil), vary...), "Access-Control-Request-Headers")
		}
	}
	if w.method != "" {
		allowed := h.Get("Access-Control-Allow-Methods")
		if !containsToken(allowed, w.method) {
			if allowed == "" {
				allowed = w.method
			} else {
				allowed = allowed + "," + w.method
			}
			h.Set("Access-Control-Allow-Methods", allowed)
		}
	}
}

func (w *preflightWriter) WriteHeaderNow() {
	w.grant()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *preflightWriter) Write(data []byte) (int, error) {
	w.grant()
	return w.ResponseWriter.Write(data)
}

func (w *preflightWriter) WriteString(s string) (int, error) {
	w.grant()
	return w.ResponseWriter.WriteString(s)
}

func containsToken(list, token string) bool {
	for _, item := range strings.Split(list, ",") {
		if strings.EqualFold(strings.TrimSpace(item), token) {
			return true
		}
	}
	return false
}
