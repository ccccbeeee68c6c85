package stats

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
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

type Stats interface {
	TopScorers(ctx context.Context) (*Leaderboard[RankedScorer], error)
	TopAssists(ctx context.Context) (*Leaderboard[RankedAssists], error)
	Standings(ctx context.Context, divisionID int64) (*StandingsView, error)
	Stadiums(ctx context.Context) ([]league.StadiumStats, error)
	TeamPerformance(ctx context.Context, teamID int64) ([]league.TeamPerformance, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Stats

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/top-scorers", h.topScorersHandler)
	r.GET("/top-assists", h.topAssistsHandler)
	r.GET("/standings", h.standingsHandler)
	r.GET("/stadiums", h.stadiumsHandler)
	r.GET("/team/:team_id/performance", h.performanceHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) topScorersHandler(c *gin.Context) {
	board, err := h.Service.TopScorers(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *httpHandler) topAssistsHandler(c *gin.Context) {
	board, err := h.Service.TopAssists(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *httpHandler) standingsHandler(c *gin.Context) {
	var divisionID int64
	if raw := c.Query("division_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid division id"})
			c.Abort()
			return
		}
		divisionID = id
	}
	view, err := h.Service.Standings(c.Request.Context(), divisionID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *httpHandler) stadiumsHandler(c *gin.Context) {
	stats, err := h.Service.Stadiums(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stadiums": stats})
}

func (h *httpHandler) performanceHandler(c *gin.Context) {
	teamID, err := strconv.ParseInt(c.Param("team_id"), 10, 64)
	if err != nil || teamID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		c.Abort()
		return
	}
	perf, err := h.Service.TeamPerformance(c.Request.Context(), teamID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"performance": perf})
}
