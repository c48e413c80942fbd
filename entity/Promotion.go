package entity

import (
	"time"

	"gorm.io/gorm"
)

// Promotion เป็นข้อมูล read-only ฝั่ง service (สร้างจาก seed เท่านั้น)
type Promotion struct {
	gorm.Model
	Title          string    `gorm:"not null" json:"title"`
	TitleAr        string    `json:"titleAr,omitempty"`
	Merchant       string    `gorm:"index;not null" json:"merchant"`
	MerchantAr     string    `json:"merchantAr,omitempty"`
	RewardAmount   float64   `json:"rewardAmount"`
	RewardCurrency string    `gorm:"size:3;default:USD" json:"rewardCurrency"`
	Description    string    `json:"description"`
	DescriptionAr  string    `json:"descriptionAr,omitempty"`
	Terms          string    `json:"terms"`
	TermsAr        string    `json:"termsAr,omitempty"`
	ThumbnailURL   string    `json:"thumbnailUrl"`
	ExpiresAt      time.Time `gorm:"index" json:"expiresAt"`

	Favorites []Favorite `json:"-"`
}
