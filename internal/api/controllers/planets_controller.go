package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"holocron/internal/models/request_models"
	"holocron/internal/services"
	"holocron/pkg/utils"
)

type PlanetsController struct {
	planetService services.PlanetServiceInterface
}

func NewPlanetsController(planetService services.PlanetServiceInterface) *PlanetsController {
	return &PlanetsController{
		planetService: planetService,
	}
}

// GetPlanets godoc
// @Summary List all planets
// @Tags Planets
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /planets [get]
func (pc *PlanetsController) GetPlanets(c *gin.Context) {
	planets, err := pc.planetService.GetAllPlanets(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, planets, "Fetched planets successfully")
}

// GetPlanetByID godoc
// @Summary Get a single planet
// @Tags Planets
// @Produce json
// @Param id path int true "Planet id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /planets/{id} [get]
func (pc *PlanetsController) GetPlanetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	planet, err := pc.planetService.GetPlanetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, planet, "Fetched planet successfully")
}

// CreatePlanet godoc
// @Summary Create a planet
// @Tags Planets
// @Accept json
// @Produce json
// @Param request body request_models.CreatePlanetRequest true "Planet payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planets [post]
func (pc *PlanetsController) CreatePlanet(c *gin.Context) {
	var req request_models.CreatePlanetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name is required")
		return
	}

	planet, err := pc.planetService.CreatePlanet(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, planet, "Planet created successfully")
}
