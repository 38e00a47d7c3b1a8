package request_models

type AddFavoriteRequest struct {
	UserID   uint   `json:"user_id" binding:"required"`
	Type     string `json:"type" binding:"required"`
	EntityID uint   `json:"entity_id" binding:"required"`
}
