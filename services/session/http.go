package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	respond "github.com/nvbf/league-desk/pkg/respond"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The session we provide the HTTP transport for.
	Session *Session

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.POST("/admin/login", h.adminLoginHandler)
	r.POST("/admin/register", h.adminRegisterHandler)
	r.POST("/team/login", h.teamLoginHandler)
	r.POST("/team/register", h.teamRegisterHandler)
	r.POST("/logout", h.logoutHandler)
	r.GET("/me", h.meHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) adminLoginHandler(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	if _, err := h.Session.LoginAdmin(c.Request.Context(), form); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Session.Current())
}

func (h *httpHandler) adminRegisterHandler(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	user, err := h.Session.RegisterAdmin(c.Request.Context(), form)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful! Please login.",
		"user":    user,
	})
}

func (h *httpHandler) teamLoginHandler(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	if _, err := h.Session.LoginTeam(c.Request.Context(), form); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Session.Current())
}

func (h *httpHandler) teamRegisterHandler(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	if _, err := h.Session.RegisterTeam(c.Request.Context(), form); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.Session.Current())
}

func (h *httpHandler) logoutHandler(c *gin.Context) {
	h.Session.Logout(c.Request.Context())
	c.JSON(http.StatusOK, h.Session.Current())
}

func (h *httpHandler) meHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Session.Current())
}
