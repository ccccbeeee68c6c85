package matches

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
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	PUT(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

type Matches interface {
	List(ctx context.Context, order Order) (*MatchView, error)
	Get(ctx context.Context, token string) (*MatchRow, error)
	Create(ctx context.Context, form MatchForm) (*MatchRow, error)
	Update(ctx context.Context, token string, form MatchForm) (*MatchRow, error)
	Delete(ctx context.Context, token string) error
	Sheet(ctx context.Context, token string) (*StatsSheet, error)
	SaveStats(ctx context.Context, token string, playerID int64, form StatsForm) (*league.MatchPlayerStats, error)
	UpdateStats(ctx context.Context, token string, playerID int64, form StatsForm) (*league.MatchPlayerStats, error)
	DeleteStats(ctx context.Context, token string, playerID int64) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Matches

	// The router instance to configure the HTTP routes.
	Router Router

	// Applied to the mutating routes.
	AdminOnly gin.HandlerFunc
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	admin := opts.AdminOnly
	if admin == nil {
		admin = func(c *gin.Context) { c.Next() }
	}
	r.GET("/", h.listHandler)
	r.GET("/:uuid", h.getHandler)
	r.POST("/", admin, h.createHandler)
	r.PUT("/:uuid", admin, h.updateHandler)
	r.DELETE("/:uuid", admin, h.deleteHandler)
	r.GET("/:uuid/stats", h.sheetHandler)
	r.POST("/:uuid/player/:player_id/stats", admin, h.saveStatsHandler)
	r.PUT("/:uuid/player/:player_id/stats", admin, h.updateStatsHandler)
	r.DELETE("/:uuid/player/:player_id/stats", admin, h.deleteStatsHandler)
}

type httpHandler struct {
	HTTPOptions
}

func playerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("player_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player id"})
		c.Abort()
		return 0, false
	}
	return id, true
}

func (h *httpHandler) listHandler(c *gin.Context) {
	view, err := h.Service.List(c.Request.Context(), ParseOrder(c.Query("order")))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *httpHandler) getHandler(c *gin.Context) {
	match, err := h.Service.Get(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

func (h *httpHandler) createHandler(c *gin.Context) {
	var form MatchForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	match, err := h.Service.Create(c.Request.Context(), form)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, match)
}

func (h *httpHandler) updateHandler(c *gin.Context) {
	var form MatchForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	match, err := h.Service.Update(c.Request.Context(), c.Param("uuid"), form)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

func (h *httpHandler) deleteHandler(c *gin.Context) {
	if !respond.Confirmed(c) {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), c.Param("uuid")); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Match deleted"})
}

func (h *httpHandler) sheetHandler(c *gin.Context) {
	sheet, err := h.Service.Sheet(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, sheet)
}

func (h *httpHandler) saveStatsHandler(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	var form StatsForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	stats, err := h.Service.SaveStats(c.Request.Context(), c.Param("uuid"), id, form)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *httpHandler) updateStatsHandler(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	var form StatsForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	stats, err := h.Service.UpdateStats(c.Request.Context(), c.Param("uuid"), id, form)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *httpHandler) deleteStatsHandler(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	if !respond.Confirmed(c) {
		return
	}
	if err := h.Service.DeleteStats(c.Request.Context(), c.Param("uuid"), id); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Statistics deleted"})
}
