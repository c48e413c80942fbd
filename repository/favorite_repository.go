package repository

import (
	"gorm.io/gorm"

	"github.com/mhd-mansour/promotions-favorites/entity"
)

// FavoriteRepository อ่านข้อมูล favorites ของ user
// ฝั่งเขียน (สร้าง/ลบ) อยู่ใน FavoriteService เพราะต้องอยู่ใน transaction เดียวกับ audit event
type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

// PromotionIDs ดึง id โปรทั้งหมดที่ user กดไว้ครั้งเดียว เอาไว้เช็ค membership ต่อแถว
func (r *FavoriteRepository) PromotionIDs(userID uint) (map[uint]struct{}, error) {
	var ids []uint
	err := r.DB.Model(&entity.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("promotion_id", &ids).Error
	if err != nil {
		return nil, err
	}

	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (r *FavoriteRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Favorite{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// หน้าเดียวของ favorites พร้อมโปร เรียงตามโปรที่ใกล้หมดอายุก่อน
func (r *FavoriteRepository) PageWithPromotion(userID uint, offset, limit int) ([]entity.Favorite, error) {
	var rows []entity.Favorite
	err := r.DB.
		Joins("JOIN promotions ON promotions.id = favorites.promotion_id").
		Where("favorites.user_id = ?", userID).
		Order("promotions.expires_at ASC").
		Offset(offset).
		Limit(limit).
		Preload("Promotion").
		Find(&rows).Error
	return rows, err
}

// AllWithPromotion ดึง favorites ทั้ง set ของ user (ใช้คำนวณ metadata ไม่ใช่แค่หน้าปัจจุบัน)
func (r *FavoriteRepository) AllWithPromotion(userID uint) ([]entity.Favorite, error) {
	var rows []entity.Favorite
	err := r.DB.
		Preload("Promotion").
		Where("user_id = ?", userID).
		Find(&rows).Error
	return rows, err
}
