package handlers

import (
	"net/http"

	"account_manager/internal/logger"
	"account_manager/internal/service"
	"account_manager/internal/session"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Flash texts shown on the next rendered page.
const (
	msgLoginFirst     = "Please login first!"
	msgLoggedIn       = "Logged in successfully!"
	msgLoggedOut      = "Logged out successfully!"
	msgBadCredentials = "Invalid username or password!"
	msgDuplicateName  = "Username already exists!"
	msgMissingFields  = "Username and password are required!"
	msgAdminCreated   = "Admin account created successfully!"
	msgUserCreated    = "User created successfully!"
	msgUserDeleted    = "User deleted successfully!"
	msgProfileSaved   = "Profile updated successfully!"
	msgYearNotNumber  = "Year of birth must be a number!"
)

// Requests larger than this are cut off before any handler logic runs.
const maxRequestBytes = 16 << 20 // 16 MiB

// Handler wires HTTP layer to services, sessions and logging.
type Handler struct {
	services *service.Service
	sessions *session.Manager
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, sessions *session.Manager, log *logger.Logger) *Handler {
	return &Handler{services: services, sessions: sessions, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.limitBody)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public landing page
	router.GET("/", h.index)

	h.registerAdminRoutes(router)
	h.registerUserRoutes(router)

	return router
}

func (h *Handler) registerAdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	{
		admin.GET("/register", h.adminRegisterPage)
		admin.POST("/register", h.adminRegister)
		admin.GET("/login", h.adminLoginPage)
		admin.POST("/login", h.adminLogin)
		admin.GET("/logout", h.adminLogout)

		gated := admin.Group("", h.adminOnly)
		{
			gated.GET("/dashboard", h.adminDashboard)
			gated.POST("/create_user", h.adminCreateUser)
			gated.GET("/view_user/:id", h.adminViewUser)
			gated.POST("/delete_user/:id", h.adminDeleteUser)
		}
	}
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	user := r.Group("/user")
	{
		user.GET("/login", h.userLoginPage)
		user.POST("/login", h.userLogin)
		user.GET("/logout", h.userLogout)

		gated := user.Group("", h.userOnly)
		{
			gated.GET("/profile", h.userProfile)
			gated.POST("/profile", h.userUpdateProfile)
		}
	}
}

// limitBody caps every request body before handlers start reading it.
func (h *Handler) limitBody(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes)
	c.Next()
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// flashAndRedirect queues msg for the next page and sends the client there.
func (h *Handler) flashAndRedirect(c *gin.Context, msg, location string) {
	h.sessions.Flash(c.Writer, c.Request, msg)
	c.Redirect(http.StatusFound, location)
}

// renderPage answers a GET "view" as JSON, draining pending flashes into it.
func (h *Handler) renderPage(c *gin.Context, body gin.H) {
	if flashes := h.sessions.TakeFlashes(c.Writer, c.Request); len(flashes) > 0 {
		body["flashes"] = flashes
	}
	c.JSON(http.StatusOK, body)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      Landing page
// @Tags         public
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (h *Handler) index(c *gin.Context) {
	h.renderPage(c, gin.H{"service": "account manager"})
}
