package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/response_models"
	"voyago/internal/planner"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type PlacesController struct {
	placeCatalog services.PlaceCatalogInterface
}

func NewPlacesController(placeCatalog services.PlaceCatalogInterface) *PlacesController {
	return &PlacesController{
		placeCatalog: placeCatalog,
	}
}

func (p *PlacesController) GetPlaces(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	venues, err := p.placeCatalog.FetchVenues(c.Request.Context(), destination, []string{planner.CategoryAll})
	if err != nil {
		utils.HandleServiceError(c, utils.ErrUpstreamUnavailable)
		return
	}

	utils.RespondSuccess(c, response_models.BuildPlacesResponse(venues), "Places fetched successfully")
}
