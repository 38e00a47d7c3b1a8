package request_models

type CreateCharacterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Gender   *string `json:"gender"`
	EyeColor *string `json:"eye_color"`
	Height   *string `json:"height"`
}
