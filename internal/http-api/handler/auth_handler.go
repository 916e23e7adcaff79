package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gameadvisor/internal/http-api/dto"
	"gameadvisor/internal/http-api/models"
	"gameadvisor/internal/http-api/repository"
	"gameadvisor/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
}

// Register creates a new account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Language: req.Language,
		Age:      req.Age,
		Platform: req.Platform,
	}

	created, err := h.svc.Register(ctx, user, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameInUse), errors.Is(err, service.ErrEmailInUse):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case repository.IsUniqueViolation(err):
			// Concurrent registration slipped past the service's existence
			// checks and hit the database constraint.
			c.JSON(http.StatusConflict, gin.H{"error": "username or email already in use"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.FromUserModel(*created))
}

// Login authenticates a user and returns an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	token, user, err := h.svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		User:        dto.FromUserModel(*user),
	})
}
