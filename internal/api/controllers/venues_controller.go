package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"urbanary/internal/models/request_models"
	"urbanary/internal/services"
	"urbanary/pkg/utils"
)

type VenuesController struct {
	venueService services.VenueServiceInterface
}

func NewVenuesController(venueService services.VenueServiceInterface) *VenuesController {
	return &VenuesController{
		venueService: venueService,
	}
}

func (v *VenuesController) CreateVenue(c *gin.Context) {
	var req request_models.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := v.venueService.CreateVenue(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id.String()}, "Venue created successfully")
}

func (v *VenuesController) GetVenueById(c *gin.Context) {
	venueId := c.Param("id")
	if venueId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Venue ID is required")
		return
	}

	venue, err := v.venueService.GetVenue(c.Request.Context(), venueId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, venue, "Venue fetched successfully")
}

func (v *VenuesController) ListVenues(c *gin.Context) {
	page, pageSize, ok := pagingParams(c)
	if !ok {
		return
	}

	venues, err := v.venueService.ListVenues(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, venues, "Venues fetched successfully")
}

func (v *VenuesController) ListByCategory(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		utils.RespondError(c, http.StatusBadRequest, "Category is required")
		return
	}

	page, pageSize, ok := pagingParams(c)
	if !ok {
		return
	}

	venues, err := v.venueService.ListByCategory(c.Request.Context(), category, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, venues, "Venues fetched successfully")
}

func (v *VenuesController) ListFeatured(c *gin.Context) {
	venues, err := v.venueService.ListFeatured(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, venues, "Featured venues fetched successfully")
}

func (v *VenuesController) CreateCategory(c *gin.Context) {
	var req request_models.CreateVenueCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := v.venueService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id.String()}, "Venue category created successfully")
}

func (v *VenuesController) ListCategories(c *gin.Context) {
	categories, err := v.venueService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Venue categories fetched successfully")
}

func pagingParams(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}
	return page, pageSize, true
}
