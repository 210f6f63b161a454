package handlers

import (
	"net/http"
	"time"

	"furniture_store/internal/middleware"
	"furniture_store/internal/models"
	"furniture_store/internal/redis"
	"furniture_store/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	userService services.UserService
	sessions    *redis.Client
	sessionTTL  time.Duration
}

func NewAuthHandler(userService services.UserService, sessions *redis.Client, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Username    string `json:"username" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=8"`
		PhoneNumber string `json:"phone_number"`
		Address     string `json:"address"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user := &models.User{
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	if err := h.userService.Register(user, req.Password); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token := uuid.NewString()
	session := &redis.SessionData{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: time.Now(),
	}
	if err := h.sessions.SetSession(token, session, h.sessionTTL); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)
	if err := h.sessions.DeleteSession(token); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to end session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.userService.GetUserByID(middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req struct {
		Username    string `json:"username"`
		PhoneNumber string `json:"phone_number"`
		Address     string `json:"address"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(middleware.UserID(c), req.Username, req.PhoneNumber, req.Address)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
