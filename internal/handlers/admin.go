package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"account_manager/internal/repository"

	"github.com/gin-gonic/gin"
)

const (
	errListUsers  = "failed to list users"
	errCreateAcct = "failed to create account"
	errLoadUser   = "failed to load user"
	errDeleteUser = "failed to delete user"
	errUserAbsent = "user not found"
	errSession    = "failed to establish session"
)

func (h *Handler) adminRegisterPage(c *gin.Context) {
	h.renderPage(c, gin.H{"page": "admin_register"})
}

// @Summary      Register an admin account
// @Tags         admin
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302
// @Router       /admin/register [post]
func (h *Handler) adminRegister(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	if username == "" || password == "" {
		h.flashAndRedirect(c, msgMissingFields, "/admin/register")
		return
	}

	_, err := h.services.RegisterAdmin(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			h.flashAndRedirect(c, msgDuplicateName, "/admin/register")
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateAcct, "admin_register_failed", err, "username", username)
		return
	}

	h.flashAndRedirect(c, msgAdminCreated, "/admin/login")
}

func (h *Handler) adminLoginPage(c *gin.Context) {
	h.renderPage(c, gin.H{"page": "admin_login"})
}

// @Summary      Admin login
// @Tags         admin
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302
// @Router       /admin/login [post]
func (h *Handler) adminLogin(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	admin, err := h.services.LoginAdmin(c.Request.Context(), username, password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("admin_login_failed", "username", username)
		}
		h.flashAndRedirect(c, msgBadCredentials, "/admin/login")
		return
	}

	claim := sessionClaimForAdmin(admin.ID, admin.Username)
	if err := h.sessions.Issue(c.Writer, c.Request, claim); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errSession, "admin_session_issue_failed", err)
		return
	}

	h.flashAndRedirect(c, msgLoggedIn, "/admin/dashboard")
}

// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      302  "redirect to /admin/login when unauthenticated"
// @Router       /admin/dashboard [get]
func (h *Handler) adminDashboard(c *gin.Context) {
	users, err := h.services.ListUsers(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListUsers, "admin_list_users_failed", err)
		return
	}
	h.renderPage(c, gin.H{"users": users})
}

// @Summary      Create a user account
// @Tags         admin
// @Accept       x-www-form-urlencoded
// @Success      302
// @Router       /admin/create_user [post]
func (h *Handler) adminCreateUser(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	if username == "" || password == "" {
		h.flashAndRedirect(c, msgMissingFields, "/admin/dashboard")
		return
	}

	_, err := h.services.CreateUser(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			h.flashAndRedirect(c, msgDuplicateName, "/admin/dashboard")
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateAcct, "admin_create_user_failed", err, "username", username)
		return
	}

	h.flashAndRedirect(c, msgUserCreated, "/admin/dashboard")
}

// @Summary      View one user
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/view_user/{id} [get]
func (h *Handler) adminViewUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errUserAbsent})
		return
	}

	user, err := h.services.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errUserAbsent})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadUser, "admin_view_user_failed", err, "id", id)
		return
	}
	h.renderPage(c, gin.H{"user": user})
}

// @Summary      Delete a user and their photo
// @Tags         admin
// @Param        id  path  int  true  "User ID"
// @Success      302
// @Failure      404  {object}  map[string]string
// @Router       /admin/delete_user/{id} [post]
func (h *Handler) adminDeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errUserAbsent})
		return
	}

	if err := h.services.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errUserAbsent})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteUser, "admin_delete_user_failed", err, "id", id)
		return
	}

	h.flashAndRedirect(c, msgUserDeleted, "/admin/dashboard")
}

func (h *Handler) adminLogout(c *gin.Context) {
	h.sessions.Clear(c.Writer, c.Request)
	h.flashAndRedirect(c, msgLoggedOut, "/")
}
