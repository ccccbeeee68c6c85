package venues

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

type Venues interface {
	Cities(ctx context.Context) ([]league.City, error)
	City(ctx context.Context, id int64) (*league.City, error)
	SaveCity(ctx context.Context, id int64, form NameForm) (*league.City, error)
	DeleteCity(ctx context.Context, id int64) error

	Stadiums(ctx context.Context) ([]league.Stadium, error)
	Stadium(ctx context.Context, id int64) (*league.Stadium, error)
	SaveStadium(ctx context.Context, id int64, form StadiumForm) (*league.Stadium, error)
	DeleteStadium(ctx context.Context, id int64) error

	Divisions(ctx context.Context) ([]DivisionRow, error)
	Division(ctx context.Context, id int64) (*league.Division, error)
	SaveDivision(ctx context.Context, id int64, form NameForm) (*league.Division, error)
	DeleteDivision(ctx context.Context, id int64) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Venues

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

	r.GET("/cities", h.citiesHandler)
	r.GET("/cities/:id", h.cityHandler)
	r.POST("/cities", admin, h.saveCityHandler)
	r.PUT("/cities/:id", admin, h.saveCityHandler)
	r.DELETE("/cities/:id", admin, h.deleteHandler(opts.Service.DeleteCity, "City deleted"))

	r.GET("/stadiums", h.stadiumsHandler)
	r.GET("/stadiums/:id", h.stadiumHandler)
	r.POST("/stadiums", admin, h.saveStadiumHandler)
	r.PUT("/stadiums/:id", admin, h.saveStadiumHandler)
	r.DELETE("/stadiums/:id", admin, h.deleteHandler(opts.Service.DeleteStadium, "Stadium deleted"))

	r.GET("/divisions", h.divisionsHandler)
	r.GET("/divisions/:id", h.divisionHandler)
	r.POST("/divisions", admin, h.saveDivisionHandler)
	r.PUT("/divisions/:id", admin, h.saveDivisionHandler)
	r.DELETE("/divisions/:id", admin, h.deleteHandler(opts.Service.DeleteDivision, "Division deleted"))
}

type httpHandler struct {
	HTTPOptions
}

// pathID reads :id. Routes without it yield zero, meaning create.
func pathID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		c.Abort()
		return 0, false
	}
	return id, true
}

func bind(c *gin.Context, form interface{}) bool {
	if err := c.ShouldBindJSON(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return false
	}
	return true
}

func saved(c *gin.Context, id int64, item interface{}) {
	if id == 0 {
		c.JSON(http.StatusCreated, item)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *httpHandler) deleteHandler(remove func(context.Context, int64) error, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if !respond.Confirmed(c) {
			return
		}
		if err := remove(c.Request.Context(), id); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}

func (h *httpHandler) citiesHandler(c *gin.Context) {
	cities, err := h.Service.Cities(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func (h *httpHandler) cityHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	city, err := h.Service.City(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

func (h *httpHandler) saveCityHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var form NameForm
	if !bind(c, &form) {
		return
	}
	city, err := h.Service.SaveCity(c.Request.Context(), id, form)
	if err != nil {
		respond.Error(c, err)
		return
	}
	saved(c, id, city)
}

func (h *httpHandler) stadiumsHandler(c *gin.Context) {
	stadiums, err := h.Service.Stadiums(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stadiums": stadiums})
}

func (h *httpHandler) stadiumHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	stadium, err := h.Service.Stadium(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, stadium)
}

func (h *httpHandler) saveStadiumHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var form StadiumForm
	if !bind(c, &form) {
		return
	}
	stadium, err := h.Service.SaveStadium(c.Request.Context(), id, form)
	if err != nil {
		respond.Error(c, err)
		return
	}
	saved(c, id, stadium)
}

func (h *httpHandler) divisionsHandler(c *gin.Context) {
	divisions, err := h.Service.Divisions(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"divisions": divisions})
}

func (h *httpHandler) divisionHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	division, err := h.Service.Division(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, division)
}

func (h *httpHandler) saveDivisionHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var form NameForm
	if !bind(c, &form) {
		return
	}
	division, err := h.Service.SaveDivision(c.Request.Context(), id, form)
	if err != nil {
		respond.Error(c, err)
		return
	}
	saved(c, id, division)
}
