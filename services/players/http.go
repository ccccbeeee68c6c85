package players

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

type Players interface {
	List(ctx context.Context, teamID int64) ([]league.Player, error)
	Get(ctx context.Context, id int64) (*league.Player, error)
	History(ctx context.Context, id int64) (*HistoryView, error)
	Create(ctx context.Context, form PlayerForm) (*league.Player, error)
	Update(ctx context.Context, id int64, form PlayerForm) (*league.Player, error)
	Delete(ctx context.Context, id int64) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Players

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
	r.GET("/:id", h.getHandler)
	r.GET("/:id/history", h.historyHandler)
	r.POST("/", admin, h.createHandler)
	r.PUT("/:id", admin, h.updateHandler)
	r.DELETE("/:id", admin, h.deleteHandler)
}

type httpHandler struct {
	HTTPOptions
}

func parseID(c *gin.Context, raw, what string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + what + " id"})
		c.Abort()
		return 0, false
	}
	return id, true
}

func (h *httpHandler) listHandler(c *gin.Context) {
	var teamID int64
	if raw := c.Query("team_id"); raw != "" {
		id, ok := parseID(c, raw, "team")
		if !ok {
			return
		}
		teamID = id
	}
	players, err := h.Service.List(c.Request.Context(), teamID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

func (h *httpHandler) getHandler(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"), "player")
	if !ok {
		return
	}
	player, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

func (h *httpHandler) historyHandler(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"), "player")
	if !ok {
		return
	}
	history, err := h.Service.History(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *httpHandler) createHandler(c *gin.Context) {
	var form PlayerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	player, err := h.Service.Create(c.Request.Context(), form)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, player)
}

func (h *httpHandler) updateHandler(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"), "player")
	if !ok {
		return
	}
	var form PlayerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	player, err := h.Service.Update(c.Request.Context(), id, form)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

func (h *httpHandler) deleteHandler(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"), "player")
	if !ok {
		return
	}
	if !respond.Confirmed(c) {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Player deleted"})
}
