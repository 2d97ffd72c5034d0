package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AlbertoAlexandre/Apontador/internal/mw"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates the credentials and issues a session cookie. The
// response carries the user's permission map so the front end can decide
// which sections to show.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	token, err := h.sessions.Create(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.SetCookie(mw.SessionCookie, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"user_id":     user.ID,
		"username":    user.Username,
		"name":        user.Professional.Name,
		"permissions": user.Permission,
	})
}

// Logout invalidates the current session token.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(mw.SessionCookie); err == nil {
		h.sessions.Delete(token)
	}
	c.SetCookie(mw.SessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

// GetSession echoes the resolved session for front-end bootstrapping.
func (h *Handler) GetSession(c *gin.Context) {
	session := mw.SessionFrom(c)
	c.JSON(http.StatusOK, gin.H{
		"user_id":     session.UserID,
		"username":    session.Username,
		"name":        session.Name,
		"permissions": session.Permissions,
	})
}
