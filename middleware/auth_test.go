package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: subject})
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func withSecret(t *testing.T, secret string) {
	t.Helper()
	old := jwtSecret
	if secret == "" {
		jwtSecret = nil
	} else {
		jwtSecret = []byte(secret)
	}
	t.Cleanup(func() { jwtSecret = old })
}

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/open", OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": UserID(c)})
	})
	r.GET("/locked", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": UserID(c)})
	})
	return r
}

func request(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	withSecret(t, "test-secret")
	r := protectedRouter()

	t.Run("missing token", func(t *testing.T) {
		if w := request(r, "/locked", ""); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signedToken(t, "other-secret", "user-1")
		if w := request(r, "/locked", token); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		token := signedToken(t, "test-secret", "user-1")
		w := request(r, "/locked", token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if want := `"user":"user-1"`; !strings.Contains(w.Body.String(), want) {
			t.Errorf("body = %s, want %s", w.Body.String(), want)
		}
	})
}

func TestOptionalAuth(t *testing.T) {
	withSecret(t, "test-secret")
	r := protectedRouter()

	t.Run("anonymous passes through", func(t *testing.T) {
		w := request(r, "/open", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if want := `"user":""`; !strings.Contains(w.Body.String(), want) {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("valid token attaches the user", func(t *testing.T) {
		token := signedToken(t, "test-secret", "user-2")
		w := request(r, "/open", token)
		if want := `"user":"user-2"`; !strings.Contains(w.Body.String(), want) {
			t.Errorf("body = %s", w.Body.String())
		}
	})
}

func TestDevMode(t *testing.T) {
	withSecret(t, "")
	r := protectedRouter()

	if !DevMode() {
		t.Fatal("expected dev mode without a secret")
	}

	// Guards pass through as anonymous.
	if w := request(r, "/locked", ""); w.Code != http.StatusOK {
		t.Errorf("dev-mode locked route status = %d, want 200", w.Code)
	}
}
