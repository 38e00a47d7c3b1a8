package db_models

type FavoriteType string

const (
	FavoriteTypeCharacter FavoriteType = "character"
	FavoriteTypePlanet    FavoriteType = "planet"
)

// Favorite is the header row of the polymorphic favorite. Type selects which
// of the two detail rows carries the payload; header and detail share the
// same identity and are always written and removed together.
type Favorite struct {
	ID     uint         `gorm:"primaryKey"`
	UserID uint         `gorm:"not null;index"`
	Type   FavoriteType `gorm:"size:20;not null"`

	CharacterDetail *FavoriteCharacter `gorm:"foreignKey:FavoriteID;constraint:OnDelete:CASCADE"`
	PlanetDetail    *FavoritePlanet    `gorm:"foreignKey:FavoriteID;constraint:OnDelete:CASCADE"`
}

// FavoriteCharacter extends a Favorite header whose type is "character".
// Its primary key is the header's id.
type FavoriteCharacter struct {
	FavoriteID  uint      `gorm:"primaryKey"`
	CharacterID uint      `gorm:"not null"`
	Character   Character `gorm:"foreignKey:CharacterID"`
}

// FavoritePlanet extends a Favorite header whose type is "planet".
type FavoritePlanet struct {
	FavoriteID uint   `gorm:"primaryKey"`
	PlanetID   uint   `gorm:"not null"`
	Planet     Planet `gorm:"foreignKey:PlanetID"`
}

// FavoriteTarget is the tagged variant a favorite points at: a character or a
// planet, never both, never neither. Constructing a Favorite goes through a
// target, so a header cannot exist without its matching variant payload.
type FavoriteTarget struct {
	kind     FavoriteType
	entityID uint
}

func CharacterTarget(characterID uint) FavoriteTarget {
	return FavoriteTarget{kind: FavoriteTypeCharacter, entityID: characterID}
}

func PlanetTarget(planetID uint) FavoriteTarget {
	return FavoriteTarget{kind: FavoriteTypePlanet, entityID: planetID}
}

// NewFavoriteTarget parses the wire-level discriminant. The second return is
// false when kind is not one of "character" or "planet".
func NewFavoriteTarget(kind string, entityID uint) (FavoriteTarget, bool) {
	switch FavoriteType(kind) {
	case FavoriteTypeCharacter:
		return CharacterTarget(entityID), true
	case FavoriteTypePlanet:
		return PlanetTarget(entityID), true
	}
	return FavoriteTarget{}, false
}

func (t FavoriteTarget) Kind() FavoriteType {
	return t.kind
}

func (t FavoriteTarget) EntityID() uint {
	return t.entityID
}
