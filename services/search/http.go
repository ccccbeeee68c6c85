package search

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	respond "github.com/nvbf/league-desk/pkg/respond"
	league "github.com/nvbf/league-desk/repos/league"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

type Search interface {
	Teams(ctx context.Context, q string) ([]league.Team, error)
	Players(ctx context.Context, q string) ([]league.Player, error)
	FilterPlayers(ctx context.Context, q PlayerQuery) ([]league.Player, error)
	FilterMatches(ctx context.Context, q MatchQuery) ([]league.Match, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Search

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/teams", h.teamsHandler)
	r.GET("/players", h.playersHandler)
	r.GET("/players/filter", h.filterPlayersHandler)
	r.GET("/matches/filter", h.filterMatchesHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) teamsHandler(c *gin.Context) {
	teams, err := h.Service.Teams(c.Request.Context(), c.Query("q"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

func (h *httpHandler) playersHandler(c *gin.Context) {
	players, err := h.Service.Players(c.Request.Context(), c.Query("q"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

func (h *httpHandler) filterPlayersHandler(c *gin.Context) {
	var q PlayerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	players, err := h.Service.FilterPlayers(c.Request.Context(), q)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

func (h *httpHandler) filterMatchesHandler(c *gin.Context) {
	var q MatchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	matches, err := h.Service.FilterMatches(c.Request.Context(), q)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}
