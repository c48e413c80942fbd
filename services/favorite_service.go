package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mhd-mansour/promotions-favorites/entity"
	"github.com/mhd-mansour/promotions-favorites/repository"
)

type FavoritesMetadata struct {
	TotalFavorites        int     `json:"totalFavorites"`
	TotalPotentialRewards float64 `json:"totalPotentialRewards"`
	ActiveFavorites       int     `json:"activeFavorites"`
	ExpiredFavorites      int     `json:"expiredFavorites"`
}

type PaginatedFavorites struct {
	Data       []PromotionResponse `json:"data"`
	Pagination Pagination          `json:"pagination"`
	Metadata   FavoritesMetadata   `json:"metadata"`
}

type FavoriteService struct {
	DB     *gorm.DB
	Promos *repository.PromotionRepository
	Favs   *repository.FavoriteRepository
	Audits *repository.AuditEventRepository
	Now    func() time.Time
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{
		DB:     db,
		Promos: repository.NewPromotionRepository(db),
		Favs:   repository.NewFavoriteRepository(db),
		Audits: repository.NewAuditEventRepository(db),
		Now:    time.Now,
	}
}

// Add กด favorite (idempotent — กดซ้ำไม่สร้างแถวซ้ำ ไม่ log ซ้ำ)
// - โปรต้องมีอยู่จริงและยังไม่หมดอายุ
// - insert ทีเดียวแล้วพึ่ง unique index (user_id + promotion_id) กัน race จากการกดซ้ำพร้อมกัน
// - audit event ออกเฉพาะตอนสร้างแถวจริง และอยู่ใน transaction เดียวกัน
func (s *FavoriteService) Add(promotionID, userID uint) (*PromotionResponse, error) {
	promo, err := s.Promos.FindByID(promotionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, err
	}

	if s.Now().After(promo.ExpiresAt) {
		return nil, ErrPromotionExpired
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		fav := entity.Favorite{UserID: userID, PromotionID: promotionID}
		if err := tx.Create(&fav).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// มีอยู่แล้ว = no-op
				return nil
			}
			return err
		}
		return s.Audits.Append(tx, userID, promotionID, entity.AuditActionFavorited)
	})
	if err != nil {
		return nil, err
	}

	out := toPromotionResponse(promo, true, s.Now())
	return &out, nil
}

// Remove เลิก favorite (idempotent — ไม่มีแถวก็ตอบสำเร็จเหมือนกัน)
// audit event ออกเฉพาะตอนลบแถวจริง
func (s *FavoriteService) Remove(promotionID, userID uint) (*PromotionResponse, error) {
	promo, err := s.Promos.FindByID(promotionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// hard delete — unique index ยังคลุม (user, promotion) อยู่ ถ้า soft delete จะกด save ใหม่ไม่ได้
		res := tx.Unscoped().
			Where("user_id = ? AND promotion_id = ?", userID, promotionID).
			Delete(&entity.Favorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return s.Audits.Append(tx, userID, promotionID, entity.AuditActionUnfavorited)
	})
	if err != nil {
		return nil, err
	}

	out := toPromotionResponse(promo, false, s.Now())
	return &out, nil
}

// ListForUser คืนหน้าเดียวของโปรที่ user กดไว้ เรียงตามใกล้หมดอายุก่อน (ต่างจาก listing หลัก)
// metadata คำนวณจาก favorites ทั้ง set ไม่ใช่แค่หน้าปัจจุบัน
func (s *FavoriteService) ListForUser(q ListQuery, userID uint) (*PaginatedFavorites, error) {
	total, err := s.Favs.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.Favs.PageWithPromotion(userID, (q.Page-1)*q.Limit, q.Limit)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	data := make([]PromotionResponse, 0, len(rows))
	for _, f := range rows {
		data = append(data, toPromotionResponse(&f.Promotion, true, now))
	}

	all, err := s.Favs.AllWithPromotion(userID)
	if err != nil {
		return nil, err
	}

	meta := FavoritesMetadata{TotalFavorites: len(all)}
	for _, f := range all {
		if f.Promotion.ExpiresAt.After(now) {
			meta.ActiveFavorites++
			meta.TotalPotentialRewards += f.Promotion.RewardAmount
		} else {
			meta.ExpiredFavorites++
		}
	}

	return &PaginatedFavorites{
		Data:       data,
		Pagination: paginate(q.Page, q.Limit, total),
		Metadata:   meta,
	}, nil
}
