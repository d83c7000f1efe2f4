package handlers

import (
	"net/http"

	"account_manager/internal/session"

	"github.com/gin-gonic/gin"
)

// Gin context key for the resolved claim.
const claimKey = "claim"

// adminOnly lets admin-authenticated requests through and bounces everyone
// else to the admin login page. Gating failures are control-flow redirects,
// not error pages.
func (h *Handler) adminOnly(c *gin.Context) {
	claim, ok := h.sessions.Claim(c.Request)
	if !ok || claim.Role != session.RoleAdmin {
		h.sessions.Flash(c.Writer, c.Request, msgLoginFirst)
		c.Redirect(http.StatusFound, "/admin/login")
		c.Abort()
		return
	}
	c.Set(claimKey, claim)
	c.Next()
}

// userOnly is the user-side counterpart. An admin session does not qualify:
// profile access is bound to the user id inside the claim.
func (h *Handler) userOnly(c *gin.Context) {
	claim, ok := h.sessions.Claim(c.Request)
	if !ok || claim.Role != session.RoleUser {
		h.sessions.Flash(c.Writer, c.Request, msgLoginFirst)
		c.Redirect(http.StatusFound, "/user/login")
		c.Abort()
		return
	}
	c.Set(claimKey, claim)
	c.Next()
}

// claimFrom fetches the claim stored by the gating middleware.
func claimFrom(c *gin.Context) session.Claim {
	v, _ := c.Get(claimKey)
	claim, _ := v.(session.Claim)
	return claim
}

func sessionClaimForAdmin(id int, username string) session.Claim {
	return session.Claim{Role: session.RoleAdmin, ID: id, Username: username}
}

func sessionClaimForUser(id int, username string) session.Claim {
	return session.Claim{Role: session.RoleUser, ID: id, Username: username}
}
