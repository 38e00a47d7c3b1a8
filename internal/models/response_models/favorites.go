package response_models

// FavoriteResponse carries exactly one of Character or Planet, selected by
// Type.
type FavoriteResponse struct {
	ID        uint               `json:"id"`
	UserID    uint               `json:"user_id"`
	Type      string             `json:"type"`
	Character *CharacterResponse `json:"character,omitempty"`
	Planet    *PlanetResponse    `json:"planet,omitempty"`
}
