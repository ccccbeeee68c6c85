package respond

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	auth "github.com/nvbf/league-desk/pkg/auth"
	validation "github.com/nvbf/league-desk/pkg/validation"
	league "github.com/nvbf/league-desk/repos/league"
)

func TestFailed(t *testing.T) {
	apiErr := fmt.Errorf("failed to create team: %w", &league.APIError{Status: 409, Message: "Team exists"})
	err := Failed(apiErr, "Failed to create team")
	assert.EqualError(t, err, "Team exists")
	assert.Equal(t, http.StatusConflict, Status(err))

	err = Failed(errors.New("dial tcp: refused"), "Failed to load teams")
	assert.EqualError(t, err, "Failed to load teams")
	assert.Equal(t, http.StatusBadGateway, Status(err))

	invalid := validation.New("Please fill in all required fields")
	assert.Same(t, invalid, Failed(invalid, "ignored"))
	assert.Nil(t, Failed(nil, "ignored"))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(validation.New("bad")))
	assert.Equal(t, http.StatusBadRequest, Status(league.ErrInvalidMatchToken))
	assert.Equal(t, http.StatusUnauthorized, Status(auth.ErrUnauthenticated))
	assert.Equal(t, http.StatusForbidden, Status(fmt.Errorf("wrapped: %w", auth.ErrForbidden)))
	assert.Equal(t, http.StatusForbidden, Status(auth.ErrTeamRequired))
	assert.Equal(t, http.StatusForbidden, Status(auth.ErrNotOwnTeam))
}

func TestConfirmed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/x", func(c *gin.Context) {
		if !Confirmed(c) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/x", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/x?confirm=true", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
