package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"holocron/internal/models/request_models"
	"holocron/internal/services"
	"holocron/pkg/utils"
)

type CharactersController struct {
	characterService services.CharacterServiceInterface
}

func NewCharactersController(characterService services.CharacterServiceInterface) *CharactersController {
	return &CharactersController{
		characterService: characterService,
	}
}

// GetCharacters godoc
// @Summary List all characters
// @Tags Characters
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /characters [get]
func (cc *CharactersController) GetCharacters(c *gin.Context) {
	characters, err := cc.characterService.GetAllCharacters(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, characters, "Fetched characters successfully")
}

// GetCharacterByID godoc
// @Summary Get a single character
// @Tags Characters
// @Produce json
// @Param id path int true "Character id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /characters/{id} [get]
func (cc *CharactersController) GetCharacterByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	character, err := cc.characterService.GetCharacterByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, character, "Fetched character successfully")
}

// CreateCharacter godoc
// @Summary Create a character
// @Tags Characters
// @Accept json
// @Produce json
// @Param request body request_models.CreateCharacterRequest true "Character payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /characters [post]
func (cc *CharactersController) CreateCharacter(c *gin.Context) {
	var req request_models.CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name is required")
		return
	}

	character, err := cc.characterService.CreateCharacter(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, character, "Character created successfully")
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
