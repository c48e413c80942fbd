package entity

import (
	"gorm.io/gorm"
)

type Favorite struct {
	gorm.Model
	// FK ไปตาราง promotions
	PromotionID uint      `json:"promotionId" gorm:"index:uniq_user_promotion,unique"`
	Promotion   Promotion `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	// FK ไป users (ได้จาก JWT)
	UserID uint `json:"userId" gorm:"index:uniq_user_promotion,unique"`
	User   User `json:"-"`
}

func (Favorite) TableName() string { return "favorites" }
