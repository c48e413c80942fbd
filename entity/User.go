package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"` // ปลอดภัย
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Relations — preload เฉพาะตอนจำเป็น
	Favorites []Favorite `json:"-"`
}
