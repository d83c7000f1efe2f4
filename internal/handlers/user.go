package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"account_manager/internal/repository"
	"account_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// Multipart parts up to this size stay in memory; larger ones spill to disk.
const maxMultipartMemory = 8 << 20

const (
	errSaveProfile  = "failed to save profile"
	errLoadProfile  = "failed to load profile"
	errBodyTooLarge = "request body too large"
	errMalformed    = "malformed form"
)

func (h *Handler) userLoginPage(c *gin.Context) {
	h.renderPage(c, gin.H{"page": "user_login"})
}

// @Summary      User login
// @Tags         user
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302
// @Router       /user/login [post]
func (h *Handler) userLogin(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	user, err := h.services.LoginUser(c.Request.Context(), username, password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("user_login_failed", "username", username)
		}
		h.flashAndRedirect(c, msgBadCredentials, "/user/login")
		return
	}

	claim := sessionClaimForUser(user.ID, user.Username)
	if err := h.sessions.Issue(c.Writer, c.Request, claim); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errSession, "user_session_issue_failed", err)
		return
	}

	h.flashAndRedirect(c, msgLoggedIn, "/user/profile")
}

// @Summary      Show own profile
// @Tags         user
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      302  "redirect to /user/login when unauthenticated"
// @Router       /user/profile [get]
func (h *Handler) userProfile(c *gin.Context) {
	claim := claimFrom(c)

	user, err := h.services.Profile.Get(c.Request.Context(), claim.ID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadProfile, "user_profile_load_failed", err, "id", claim.ID)
		return
	}
	h.renderPage(c, gin.H{"user": user})
}

// @Summary      Update own profile
// @Tags         user
// @Accept       multipart/form-data
// @Param        name           formData  string  false  "First name"
// @Param        surname        formData  string  false  "Surname"
// @Param        year_of_birth  formData  string  false  "Year of birth (empty clears it)"
// @Param        description    formData  string  false  "Free-text description"
// @Param        photo          formData  file    false  "Profile photo (png/jpg/jpeg/gif)"
// @Success      302
// @Failure      413  {object}  map[string]string
// @Router       /user/profile [post]
func (h *Handler) userUpdateProfile(c *gin.Context) {
	claim := claimFrom(c)

	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": errBodyTooLarge})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errMalformed})
		return
	}

	update := service.ProfileUpdate{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Surname:     strings.TrimSpace(c.PostForm("surname")),
		Description: c.PostForm("description"),
	}

	// An empty year clears the field; anything non-numeric is rejected
	// without touching the row.
	if raw := strings.TrimSpace(c.PostForm("year_of_birth")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			h.flashAndRedirect(c, msgYearNotNumber, "/user/profile")
			return
		}
		update.YearOfBirth = &year
	}

	if fh, err := c.FormFile("photo"); err == nil && fh.Filename != "" {
		f, err := fh.Open()
		if err != nil {
			h.logAndJSONError(c, http.StatusInternalServerError, errSaveProfile, "user_photo_open_failed", err)
			return
		}
		defer func() { _ = f.Close() }()
		update.Photo = &service.PhotoUpload{Filename: fh.Filename, Content: f, Size: fh.Size}
	}

	if err := h.services.Profile.Update(c.Request.Context(), claim.ID, update); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errUserAbsent})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errSaveProfile, "user_profile_update_failed", err, "id", claim.ID)
		return
	}

	h.flashAndRedirect(c, msgProfileSaved, "/user/profile")
}

func (h *Handler) userLogout(c *gin.Context) {
	h.sessions.Clear(c.Writer, c.Request)
	h.flashAndRedirect(c, msgLoggedOut, "/")
}
