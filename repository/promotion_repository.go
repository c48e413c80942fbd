package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mhd-mansour/promotions-favorites/entity"
)

// PromotionRepository รับผิดชอบการคุยกับตาราง promotions เท่านั้น
type PromotionRepository struct {
	DB *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{DB: db}
}

// PromotionFilter เป็น query parameter แบบ typed — filter ไหนว่างจะไม่ถูกใส่ใน predicate
type PromotionFilter struct {
	Q             string
	Merchant      string
	ExpiresBefore *time.Time
	ExpiresAfter  *time.Time
}

// Apply ประกอบ filter ทั้งหมดแบบ AND ลงบน query
func (f PromotionFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.Q != "" {
		pattern := "%" + strings.ToLower(f.Q) + "%"
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(merchant) LIKE ?)", pattern, pattern)
	}
	if f.Merchant != "" {
		q = q.Where("merchant = ?", f.Merchant)
	}
	if f.ExpiresBefore != nil {
		q = q.Where("expires_at <= ?", *f.ExpiresBefore)
	}
	if f.ExpiresAfter != nil {
		q = q.Where("expires_at >= ?", *f.ExpiresAfter)
	}
	return q
}

// นับทั้ง set ที่ตรง filter (ก่อนตัดหน้า)
func (r *PromotionRepository) Count(f PromotionFilter) (int64, error) {
	var count int64
	err := f.Apply(r.DB.Model(&entity.Promotion{})).Count(&count).Error
	return count, err
}

// ดึงหน้าเดียว เรียงใหม่สุดก่อน
func (r *PromotionRepository) FindPage(f PromotionFilter, offset, limit int) ([]entity.Promotion, error) {
	var promos []entity.Promotion
	err := f.Apply(r.DB.Model(&entity.Promotion{})).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&promos).Error
	return promos, err
}

// โหลดโปรตาม ID
func (r *PromotionRepository) FindByID(id uint) (*entity.Promotion, error) {
	var promo entity.Promotion
	if err := r.DB.First(&promo, id).Error; err != nil {
		return nil, err
	}
	return &promo, nil
}
