package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeGate struct {
	authenticated bool
	admin         bool
}

func (g fakeGate) Authenticated() bool { return g.authenticated }
func (g fakeGate) IsAdmin() bool       { return g.admin }

func serve(middleware gin.HandlerFunc) int {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", middleware, func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec.Code
}

func TestRequireSession(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, serve(RequireSession(fakeGate{})))
	assert.Equal(t, http.StatusOK, serve(RequireSession(fakeGate{authenticated: true})))
}

func TestRequireAdmin(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, serve(RequireAdmin(fakeGate{})))
	assert.Equal(t, http.StatusForbidden, serve(RequireAdmin(fakeGate{authenticated: true})))
	assert.Equal(t, http.StatusOK, serve(RequireAdmin(fakeGate{authenticated: true, admin: true})))
}
