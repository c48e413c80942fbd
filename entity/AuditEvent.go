package entity

import (
	"gorm.io/gorm"
)

const (
	AuditActionFavorited   = "favorited"
	AuditActionUnfavorited = "unfavorited"
)

// AuditEvent เป็น log แบบ append-only ของการกด favorite/unfavorite
// CreatedAt ใช้เป็น timestamp ของเหตุการณ์
type AuditEvent struct {
	gorm.Model
	UserID      uint   `gorm:"index" json:"userId"`
	PromotionID uint   `gorm:"index" json:"promotionId"`
	Action      string `gorm:"size:20;not null" json:"action"` // "favorited" | "unfavorited"
}
