// SPDX-License-Identifier: MIT
package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/thatcatcamp/palettekit/internal/logging"
)

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(SecurityHeadersMiddleware())
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Cache-Control":          "no-store",
	} {
		if got := w.Header().Get(header); got != want {
			t.Errorf("%s: expected %q, got %q", header, want, got)
		}
	}
	if !strings.Contains(w.Header().Get("Content-Security-Policy"), "default-src 'none'") {
		t.Error("CSP header missing")
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	if err := logging.Initialize("info", "logfmt", &buf); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/api/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/missing", nil))

	out := buf.String()
	if !strings.Contains(out, "path=/api/missing") {
		t.Errorf("Expected path in log line, got %q", out)
	}
	if !strings.Contains(out, "status=404") {
		t.Errorf("Expected status in log line, got %q", out)
	}
	if !strings.Contains(out, "level=warn") {
		t.Errorf("Expected 4xx to log at warn, got %q", out)
	}
}
