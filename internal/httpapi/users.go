package httpapi

import (
	"net/http"

	"auditforce/internal/store"

	"github.com/gin-gonic/gin"
)

func (h Handlers) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Users())
}

func (h Handlers) GetUser(c *gin.Context) {
	u, ok := h.Store.GetUser(c.Param("id"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

type createUserRequest struct {
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Role      store.UserRole `json:"role"`
	Password  string         `json:"password"`
	AvatarURL string         `json:"avatarUrl"`
}

func (h Handlers) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	u, err := h.Store.AddUser(store.NewUserInput{
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Password:  req.Password,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

type updateUserRequest struct {
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Role      store.UserRole       `json:"role"`
	Password  string               `json:"password"`
	AvatarURL string               `json:"avatarUrl"`
	Status    store.PresenceStatus `json:"status"`
}

func (h Handlers) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	u, err := h.Store.UpdateUser(store.UpdateUserInput{
		ID:        c.Param("id"),
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Password:  req.Password,
		AvatarURL: req.AvatarURL,
		Status:    req.Status,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
