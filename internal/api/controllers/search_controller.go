package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"urbanary/internal/models/request_models"
	"urbanary/internal/services"
	"urbanary/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

func (s *SearchController) HybridSearch(c *gin.Context) {
	var req request_models.HybridSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.searchService.HybridSearch(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Search completed successfully")
}
