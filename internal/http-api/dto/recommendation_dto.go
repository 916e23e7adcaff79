package dto

import "gameadvisor/internal/http-api/service"

// RecommendationListResponse: ranked recommendations for one user.
type RecommendationListResponse struct {
	Items []service.Recommendation `json:"items"`
	Total int                      `json:"total"`
}
