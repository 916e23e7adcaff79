package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"gameadvisor/internal/http-api/dto"
	"gameadvisor/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

const defaultRecommendationLimit = 10

type RecommendationHandler struct {
	svc service.RecommendationService
}

func NewRecommendationHandler(svc service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

func (h *RecommendationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
}

// List returns up to ?limit= recommendations for the caller, best first.
func (h *RecommendationHandler) List(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	limit := defaultRecommendationLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	recommendations, err := h.svc.Recommend(ctx, userID.(string), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.RecommendationListResponse{
		Items: recommendations,
		Total: len(recommendations),
	})
}
