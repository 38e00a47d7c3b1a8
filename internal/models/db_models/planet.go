package db_models

type Planet struct {
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"size:120;not null"`
	Climate    *string `gorm:"size:50"`
	Terrain    *string `gorm:"size:50"`
	Population *string `gorm:"size:50"`
}
