package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"holocron/internal/models/db_models"
	"holocron/internal/models/request_models"
	"holocron/internal/services"
	"holocron/pkg/utils"
)

type FavoritesController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoritesController(favoriteService services.FavoriteServiceInterface) *FavoritesController {
	return &FavoritesController{
		favoriteService: favoriteService,
	}
}

// AddFavorite godoc
// @Summary Add a favorite for any user
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body request_models.AddFavoriteRequest true "Favorite payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /favorites [post]
func (fc *FavoritesController) AddFavorite(c *gin.Context) {
	var req request_models.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing user_id, type, or entity_id")
		return
	}

	target, ok := db_models.NewFavoriteTarget(req.Type, req.EntityID)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid favorite type")
		return
	}

	favorite, err := fc.favoriteService.AddFavorite(c.Request.Context(), req.UserID, target)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, favorite, "Favorite created successfully")
}

// DeleteFavorite godoc
// @Summary Delete a favorite by id
// @Tags Favorites
// @Produce json
// @Param id path int true "Favorite id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /favorites/{id} [delete]
func (fc *FavoritesController) DeleteFavorite(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := fc.favoriteService.DeleteFavorite(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Favorite deleted successfully")
}

// GetMyFavorites godoc
// @Summary List the acting user's favorites
// @Tags Favorites
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/favorites [get]
func (fc *FavoritesController) GetMyFavorites(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	favorites, err := fc.favoriteService.ListUserFavorites(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, favorites, "Fetched favorites successfully")
}

// AddFavoriteCharacter godoc
// @Summary Favorite a character for the acting user
// @Tags Favorites
// @Produce json
// @Param id path int true "Character id"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/favorites/characters/{id} [post]
func (fc *FavoritesController) AddFavoriteCharacter(c *gin.Context) {
	fc.addForCaller(c, db_models.FavoriteTypeCharacter)
}

// AddFavoritePlanet godoc
// @Summary Favorite a planet for the acting user
// @Tags Favorites
// @Produce json
// @Param id path int true "Planet id"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/favorites/planets/{id} [post]
func (fc *FavoritesController) AddFavoritePlanet(c *gin.Context) {
	fc.addForCaller(c, db_models.FavoriteTypePlanet)
}

// DeleteFavoriteCharacter godoc
// @Summary Remove a character favorite of the acting user
// @Tags Favorites
// @Produce json
// @Param id path int true "Character id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/favorites/characters/{id} [delete]
func (fc *FavoritesController) DeleteFavoriteCharacter(c *gin.Context) {
	fc.deleteForCaller(c, db_models.FavoriteTypeCharacter)
}

// DeleteFavoritePlanet godoc
// @Summary Remove a planet favorite of the acting user
// @Tags Favorites
// @Produce json
// @Param id path int true "Planet id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/favorites/planets/{id} [delete]
func (fc *FavoritesController) DeleteFavoritePlanet(c *gin.Context) {
	fc.deleteForCaller(c, db_models.FavoriteTypePlanet)
}

func (fc *FavoritesController) addForCaller(c *gin.Context, kind db_models.FavoriteType) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	entityID, ok := parseIDParam(c)
	if !ok {
		return
	}

	target, _ := db_models.NewFavoriteTarget(string(kind), entityID)
	favorite, err := fc.favoriteService.AddFavorite(c.Request.Context(), userID, target)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, favorite, "Favorite created successfully")
}

func (fc *FavoritesController) deleteForCaller(c *gin.Context, kind db_models.FavoriteType) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	entityID, ok := parseIDParam(c)
	if !ok {
		return
	}

	target, _ := db_models.NewFavoriteTarget(string(kind), entityID)
	if err := fc.favoriteService.DeleteFavoriteByTarget(c.Request.Context(), userID, target); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Favorite deleted successfully")
}

func callerID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return 0, false
	}
	return userID, true
}
