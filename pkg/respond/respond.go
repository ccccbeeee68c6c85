// Package respond turns service errors into console JSON answers.
package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	auth "github.com/nvbf/league-desk/pkg/auth"
	validation "github.com/nvbf/league-desk/pkg/validation"
	league "github.com/nvbf/league-desk/repos/league"
)

// Failure is a failed action with the message shown to the user.
type Failure struct {
	Message string
	Err     error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Failed wraps err with the server message it carries, or fallback.
// Validation failures and malformed match tokens pass through untouched.
func Failed(err error, fallback string) error {
	if err == nil {
		return nil
	}
	if validation.IsValidation(err) || errors.Is(err, league.ErrInvalidMatchToken) {
		return err
	}
	var failure *Failure
	if errors.As(err, &failure) {
		return err
	}
	return &Failure{Message: league.Message(err, fallback), Err: err}
}

// Status picks the console status for err.
func Status(err error) int {
	switch {
	case validation.IsValidation(err), errors.Is(err, league.ErrInvalidMatchToken):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrForbidden), errors.Is(err, auth.ErrTeamRequired),
		errors.Is(err, auth.ErrNotOwnTeam):
		return http.StatusForbidden
	}
	if status := league.StatusOf(err); status >= 400 {
		return status
	}
	return http.StatusBadGateway
}

// Error answers {"error": message} and aborts the chain.
func Error(c *gin.Context, err error) {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(errors.Unwrap(err)).Str("path", c.FullPath()).Msg(err.Error())
	}
	c.JSON(status, gin.H{"error": err.Error()})
	c.Abort()
}

// Confirmed checks the ?confirm=true guard of destructive routes and
// answers 400 when it is missing.
func Confirmed(c *gin.Context) bool {
	if c.Query("confirm") == "true" {
		return true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required: repeat with ?confirm=true"})
	c.Abort()
	return false
}
