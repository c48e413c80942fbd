package repository

import (
	"gorm.io/gorm"

	"github.com/mhd-mansour/promotions-favorites/entity"
)

type AuditEventRepository struct {
	DB *gorm.DB
}

func NewAuditEventRepository(db *gorm.DB) *AuditEventRepository {
	return &AuditEventRepository{DB: db}
}

// Append บันทึกเหตุการณ์ลง log (append-only ไม่มีแก้/ลบ)
// รับ tx เพราะต้อง commit พร้อมกับการสร้าง/ลบ favorite เสมอ
func (r *AuditEventRepository) Append(tx *gorm.DB, userID, promotionID uint, action string) error {
	return tx.Create(&entity.AuditEvent{
		UserID:      userID,
		PromotionID: promotionID,
		Action:      action,
	}).Error
}

func (r *AuditEventRepository) CountByUserAndPromotion(userID, promotionID uint, action string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.AuditEvent{}).
		Where("user_id = ? AND promotion_id = ? AND action = ?", userID, promotionID, action).
		Count(&count).Error
	return count, err
}
