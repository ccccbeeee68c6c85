package admin

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	respond "github.com/nvbf/league-desk/pkg/respond"
	league "github.com/nvbf/league-desk/repos/league"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

type Admin interface {
	Admins(ctx context.Context) ([]league.User, error)
	RemoveTeam(ctx context.Context, teamID int64) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Admin

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/admins", h.adminsHandler)
	r.DELETE("/team/:id", h.removeTeamHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) adminsHandler(c *gin.Context) {
	admins, err := h.Service.Admins(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admins": admins})
}

func (h *httpHandler) removeTeamHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		c.Abort()
		return
	}
	if !respond.Confirmed(c) {
		return
	}
	if err := h.Service.RemoveTeam(c.Request.Context(), id); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team deleted"})
}
