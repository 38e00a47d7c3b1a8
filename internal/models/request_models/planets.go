package request_models

type CreatePlanetRequest struct {
	Name       string  `json:"name" binding:"required"`
	Climate    *string `json:"climate"`
	Terrain    *string `json:"terrain"`
	Population *string `json:"population"`
}
