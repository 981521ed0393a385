package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Name     string `gorm:"column:name;uniqueIndex"` // login name, globally unique
	Password string `gorm:"column:password"`         // argon2id hash, salt embedded
}
