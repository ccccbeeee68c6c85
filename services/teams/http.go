package teams

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

type Teams interface {
	List(ctx context.Context) ([]league.Team, error)
	Get(ctx context.Context, id int64) (*Profile, error)
	Create(ctx context.Context, form CreateForm) (*Profile, error)
	Update(ctx context.Context, id int64, form ProfileForm) (*Profile, error)
	Delete(ctx context.Context, id int64) error
	History(ctx context.Context, id int64) ([]league.TeamMatchHistory, error)
	Dashboard(ctx context.Context) (*league.TeamDashboard, error)
	FormOptions(ctx context.Context) (*FormOptions, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Teams

	// The router instance to configure the HTTP routes.
	Router Router

	// Applied to the administrator routes.
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
	r.GET("/", admin, h.listHandler)
	r.POST("/", admin, h.createHandler)
	r.GET("/dashboard", h.dashboardHandler)
	r.GET("/form-options", h.formOptionsHandler)
	r.GET("/:id", h.getHandler)
	r.PUT("/:id", h.updateHandler)
	r.DELETE("/:id", admin, h.deleteHandler)
	r.GET("/:id/history", h.historyHandler)
}

type httpHandler struct {
	HTTPOptions
}

func teamID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		c.Abort()
		return 0, false
	}
	return id, true
}

func (h *httpHandler) listHandler(c *gin.Context) {
	teams, err := h.Service.List(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

func (h *httpHandler) createHandler(c *gin.Context) {
	var form CreateForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	team, err := h.Service.Create(c.Request.Context(), form)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

func (h *httpHandler) getHandler(c *gin.Context) {
	id, ok := teamID(c)
	if !ok {
		return
	}
	team, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

func (h *httpHandler) updateHandler(c *gin.Context) {
	id, ok := teamID(c)
	if !ok {
		return
	}
	var form ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	team, err := h.Service.Update(c.Request.Context(), id, form)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team information updated successfully!", "team": team})
}

func (h *httpHandler) deleteHandler(c *gin.Context) {
	id, ok := teamID(c)
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
	c.JSON(http.StatusOK, gin.H{"message": "Team deleted"})
}

func (h *httpHandler) historyHandler(c *gin.Context) {
	id, ok := teamID(c)
	if !ok {
		return
	}
	history, err := h.Service.History(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (h *httpHandler) dashboardHandler(c *gin.Context) {
	dashboard, err := h.Service.Dashboard(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *httpHandler) formOptionsHandler(c *gin.Context) {
	options, err := h.Service.FormOptions(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}
