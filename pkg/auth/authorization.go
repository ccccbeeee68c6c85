package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrUnauthenticated = errors.New("login required")
	ErrForbidden       = errors.New("administrator access required")
	ErrTeamRequired    = errors.New("a team must be logged in")
	ErrNotOwnTeam      = errors.New("not available to this team")
)

// Gate is the view of the console session the middleware needs.
type Gate interface {
	Authenticated() bool
	IsAdmin() bool
}

// RequireSession lets a request through when an administrator or a team
// is logged in.
func RequireSession(gate Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate.Authenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthenticated.Error()})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin lets a request through only for an administrator session.
func RequireAdmin(gate Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate.Authenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthenticated.Error()})
			c.Abort()
			return
		}
		if !gate.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": ErrForbidden.Error()})
			c.Abort()
			return
		}
		c.Next()
	}
}
