package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"arogyaai/pkg/token"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newAuthRouter(t *testing.T, tokens *token.Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mw := New(&mockLogger{}, tokens, 0)
	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user id in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

func TestAuth(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)

	t.Run("Valid Token", func(t *testing.T) {
		r := newAuthRouter(t, tokens)
		tok, err := tokens.Generate(42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Missing Header", func(t *testing.T) {
		r := newAuthRouter(t, tokens)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Malformed Header", func(t *testing.T) {
		r := newAuthRouter(t, tokens)
		for _, header := range []string{"Basic abc", "Bearer", "bearer x"} {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", header)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("header %q: expected 401, got %d", header, w.Code)
			}
		}
	})

	t.Run("Foreign Signature", func(t *testing.T) {
		r := newAuthRouter(t, tokens)
		tok, err := token.NewManager("other-secret", time.Hour).Generate(42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Throttles After Burst", func(t *testing.T) {
		mw := New(&mockLogger{}, token.NewManager("s", time.Hour), 10) // burst of 1
		r := gin.New()
		r.POST("/login", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		statuses := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			statuses = append(statuses, w.Code)
		}

		if statuses[0] != http.StatusOK {
			t.Errorf("first request should pass, got %d", statuses[0])
		}
		if statuses[1] != http.StatusTooManyRequests && statuses[2] != http.StatusTooManyRequests {
			t.Errorf("expected throttling within burst window, got %v", statuses)
		}
	})

	t.Run("Disabled When Zero", func(t *testing.T) {
		mw := New(&mockLogger{}, token.NewManager("s", time.Hour), 0)
		r := gin.New()
		r.POST("/login", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 20; i++ {
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200 with limiting disabled, got %d", i, w.Code)
			}
		}
	})

	t.Run("Clients Are Independent", func(t *testing.T) {
		mw := New(&mockLogger{}, token.NewManager("s", time.Hour), 10)
		r := gin.New()
		r.POST("/login", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		for i, addr := range []string{"10.0.0.1:1", "10.0.0.2:1", "10.0.0.3:1"} {
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = addr
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("client %d: first request should pass, got %d", i, w.Code)
			}
		}
	})
}
