package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/response_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type AutocompleteController struct {
	placeCatalog services.PlaceCatalogInterface
}

func NewAutocompleteController(placeCatalog services.PlaceCatalogInterface) *AutocompleteController {
	return &AutocompleteController{
		placeCatalog: placeCatalog,
	}
}

func (a *AutocompleteController) GetSuggestions(c *gin.Context) {
	input := c.Query("input")
	if input == "" {
		utils.RespondError(c, http.StatusBadRequest, "Input is required")
		return
	}

	predictions, err := a.placeCatalog.AutocompleteCities(c.Request.Context(), input)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AutocompleteResponse{Predictions: predictions}, "Suggestions fetched successfully")
}
