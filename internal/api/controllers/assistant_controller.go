package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"urbanary/internal/models/request_models"
	"urbanary/internal/services"
	"urbanary/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
}

func NewAssistantController(assistantService services.AssistantServiceInterface) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

func (a *AssistantController) Ask(c *gin.Context) {
	var req request_models.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	reply, err := a.assistantService.Ask(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "Assistant replied successfully")
}
