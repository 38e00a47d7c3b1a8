package db_models

type Character struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"size:120;not null"`
	Gender   *string `gorm:"size:20"`
	EyeColor *string `gorm:"size:20"`
	Height   *string `gorm:"size:10"`
}
