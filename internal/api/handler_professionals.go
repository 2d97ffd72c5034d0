package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AlbertoAlexandre/Apontador/internal/model"
)

// ListProfessionals returns the registered workers ordered by name.
func (h *Handler) ListProfessionals(c *gin.Context) {
	professionals, err := h.store.ListProfessionals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, professionals)
}

type createProfessionalRequest struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// CreateProfessional registers a worker.
func (h *Handler) CreateProfessional(c *gin.Context) {
	var req createProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	professional := model.Professional{
		Name:  req.Name,
		Role:  req.Role,
		Phone: req.Phone,
		Email: req.Email,
	}
	if err := h.store.CreateProfessional(c.Request.Context(), &professional); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, professional)
}

// ListUsers returns the logins with their professional and permissions.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

type createUserRequest struct {
	ProfessionalID int64  `json:"professional_id" binding:"required"`
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password" binding:"required"`
}

// CreateUser creates a login for a professional. The user starts with
// every capability off until permissions are granted.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := model.User{
		ProfessionalID: req.ProfessionalID,
		Username:       req.Username,
		Password:       req.Password,
	}
	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdatePermissions replaces a user's capability flags and pushes the new
// flags into any live sessions.
func (h *Handler) UpdatePermissions(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var perms model.Permission
	if err := c.ShouldBindJSON(&perms); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	perms.UserID = userID
	if err := h.store.UpdatePermissions(c.Request.Context(), userID, perms); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.sessions.Refresh(userID, perms)
	c.Status(http.StatusNoContent)
}
