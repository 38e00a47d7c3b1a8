package response_models

type CharacterResponse struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Gender   *string `json:"gender"`
	EyeColor *string `json:"eye_color"`
	Height   *string `json:"height"`
}
