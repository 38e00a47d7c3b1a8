package utils

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrCharacterNotFound     = errors.New("character not found")
	ErrPlanetNotFound        = errors.New("planet not found")
	ErrFavoriteNotFound      = errors.New("favorite not found")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidFavoriteType   = errors.New("invalid favorite type")
	ErrFavoriteDetailMissing = errors.New("favorite detail missing for its type")
	ErrDatabaseError         = errors.New("database error")
)
