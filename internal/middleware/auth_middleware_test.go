package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushub/eventhub/internal/app/models"
	"github.com/campushub/eventhub/internal/pkg/auth"
)

const testCookieName = "eventhub_session"

func newGuards(t *testing.T) (*SessionMiddleware, *auth.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := auth.NewSessionService(auth.SessionConfig{
		Secret:   "test-secret",
		Lifetime: time.Hour,
		Issuer:   "eventhub-test",
	})
	return NewSessionMiddleware(sessions, testCookieName), sessions
}

func serve(t *testing.T, handlers []gin.HandlerFunc, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/protected", chain...)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookie})
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAPIAuthRejectsMissingSession(t *testing.T) {
	guards, _ := newGuards(t)

	rec := serve(t, []gin.HandlerFunc{guards.APIAuth()}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAPIAuthRejectsTamperedSession(t *testing.T) {
	guards, sessions := newGuards(t)

	token, err := sessions.Issue(&models.User{ID: 1, Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec := serve(t, []gin.HandlerFunc{guards.APIAuth()}, token+"tampered")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAPIAuthPassesValidSession(t *testing.T) {
	guards, sessions := newGuards(t)

	token, err := sessions.Issue(&models.User{ID: 7, Name: "Alice", Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec := serve(t, []gin.HandlerFunc{guards.APIAuth()}, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestPageAuthRedirects(t *testing.T) {
	guards, _ := newGuards(t)

	rec := serve(t, []gin.HandlerFunc{guards.PageAuth()}, "")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("location = %q, want /login", loc)
	}
}

func TestAdminRequired(t *testing.T) {
	guards, sessions := newGuards(t)

	student, err := sessions.Issue(&models.User{ID: 1, Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	admin, err := sessions.Issue(&models.User{ID: 2, Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	chain := []gin.HandlerFunc{guards.APIAuth(), guards.AdminRequired()}

	if rec := serve(t, chain, student); rec.Code != http.StatusForbidden {
		t.Fatalf("student: status = %d, want 403", rec.Code)
	}
	if rec := serve(t, chain, admin); rec.Code != http.StatusOK {
		t.Fatalf("admin: status = %d, want 200", rec.Code)
	}
	// Without APIAuth in front there is no role in the context.
	if rec := serve(t, []gin.HandlerFunc{guards.AdminRequired()}, admin); rec.Code != http.StatusUnauthorized {
		t.Fatalf("bare admin guard: status = %d, want 401", rec.Code)
	}
}

func TestCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, ok := CurrentUserID(c); ok {
		t.Fatal("expected no user id on a bare context")
	}

	c.Set(CtxUserIDKey, int64(42))
	id, ok := CurrentUserID(c)
	if !ok || id != 42 {
		t.Fatalf("id = %d, ok = %v", id, ok)
	}
}
