package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"gameadvisor/internal/http-api/dto"
	"gameadvisor/internal/http-api/models"
	"gameadvisor/internal/http-api/repository"
	"gameadvisor/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type LibraryHandler struct {
	svc service.LibraryService
}

func NewLibraryHandler(svc service.LibraryService) *LibraryHandler {
	return &LibraryHandler{svc: svc}
}

func (h *LibraryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Set)
	rg.GET("", h.List)
	rg.DELETE("/:game_id", h.Remove)
}

// Set adds a game to the caller's library or updates the existing entry.
func (h *LibraryHandler) Set(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.AddToLibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entry := &models.UserGame{
		UserID: userID.(string),
		GameID: req.GameID,
		Status: req.Status,
		Rating: req.Rating,
	}
	if req.PlaytimeHours != nil {
		entry.PlaytimeHours = *req.PlaytimeHours
	} else {
		entry.PlaytimeHours = decimal.Zero
	}

	if err := h.svc.Set(ctx, entry); err != nil {
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "game added to library"})
}

// List returns the caller's library with game metadata.
func (h *LibraryHandler) List(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	library, err := h.svc.List(ctx, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]dto.LibraryEntryResponse, 0, len(library))
	for _, entry := range library {
		items = append(items, dto.FromLibraryModel(entry))
	}

	c.JSON(http.StatusOK, dto.LibraryListResponse{
		Items: items,
		Total: len(items),
	})
}

// Remove deletes one library entry.
func (h *LibraryHandler) Remove(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	gameID, err := strconv.ParseInt(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game_id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Remove(ctx, userID.(string), gameID); err != nil {
		if errors.Is(err, repository.ErrNotInLibrary) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
