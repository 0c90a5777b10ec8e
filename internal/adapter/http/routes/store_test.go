package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newInternalRouter() *gin.Engine {
	r := gin.New()
	r.GET("/internal", internalOnly(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func TestInternalOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing header", func(t *testing.T) {
		t.Setenv("INTERNAL_API_KEY", "secret")
		r := newInternalRouter()

		req := httptest.NewRequest(http.MethodGet, "/internal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		t.Setenv("INTERNAL_API_KEY", "secret")
		r := newInternalRouter()

		req := httptest.NewRequest(http.MethodGet, "/internal", nil)
		req.Header.Set("X-Internal-Key", "guess")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unset key rejects everything", func(t *testing.T) {
		t.Setenv("INTERNAL_API_KEY", "")
		r := newInternalRouter()

		req := httptest.NewRequest(http.MethodGet, "/internal", nil)
		req.Header.Set("X-Internal-Key", "")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("correct key", func(t *testing.T) {
		t.Setenv("INTERNAL_API_KEY", "secret")
		r := newInternalRouter()

		req := httptest.NewRequest(http.MethodGet, "/internal", nil)
		req.Header.Set("X-Internal-Key", "secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
