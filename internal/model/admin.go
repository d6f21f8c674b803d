package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// Admin - учётная запись администратора дашборда
type Admin struct {
	ID       int
	Name     string
	Login    string
	Password string
}

type AdminClaims struct {
	jwt.RegisteredClaims
}

// AuthData - данные, выдаваемые админу после логина/регистрации
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
