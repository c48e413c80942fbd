package services

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/mhd-mansour/promotions-favorites/entity"
	"github.com/mhd-mansour/promotions-favorites/repository"
)

// error กลางที่ controller ใช้ตรวจชนิด
var (
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrPromotionExpired  = errors.New("promotion expired")
)

// ----- DTOs from Controller -----

type ListQuery struct {
	Page          int
	Limit         int
	Q             string
	Merchant      string
	ExpiresBefore *time.Time
	ExpiresAfter  *time.Time
}

type PromotionResponse struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	TitleAr         string    `json:"titleAr,omitempty"`
	Merchant        string    `json:"merchant"`
	MerchantAr      string    `json:"merchantAr,omitempty"`
	RewardAmount    float64   `json:"rewardAmount"`
	RewardCurrency  string    `json:"rewardCurrency"`
	Description     string    `json:"description"`
	DescriptionAr   string    `json:"descriptionAr,omitempty"`
	Terms           string    `json:"terms"`
	TermsAr         string    `json:"termsAr,omitempty"`
	ThumbnailURL    string    `json:"thumbnailUrl"`
	ExpiresAt       time.Time `json:"expiresAt"`
	CreatedAt       time.Time `json:"createdAt"`
	IsFavorite      bool      `json:"isFavorite"`
	DaysUntilExpiry *int      `json:"daysUntilExpiry,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type PaginatedPromotions struct {
	Data       []PromotionResponse `json:"data"`
	Pagination Pagination          `json:"pagination"`
}

type PromotionService struct {
	Promos *repository.PromotionRepository
	Favs   *repository.FavoriteRepository
	Now    func() time.Time
}

func NewPromotionService(db *gorm.DB) *PromotionService {
	return &PromotionService{
		Promos: repository.NewPromotionRepository(db),
		Favs:   repository.NewFavoriteRepository(db),
		Now:    time.Now,
	}
}

// List คืนหน้าเดียวของโปร เรียงใหม่สุดก่อน พร้อม flag ว่า user กด favorite ไว้หรือยัง
// total นับทั้ง set ที่ตรง filter ก่อนตัดหน้า
func (s *PromotionService) List(q ListQuery, userID uint) (*PaginatedPromotions, error) {
	filter := repository.PromotionFilter{
		Q:             q.Q,
		Merchant:      q.Merchant,
		ExpiresBefore: q.ExpiresBefore,
		ExpiresAfter:  q.ExpiresAfter,
	}

	total, err := s.Promos.Count(filter)
	if err != nil {
		return nil, err
	}

	promos, err := s.Promos.FindPage(filter, (q.Page-1)*q.Limit, q.Limit)
	if err != nil {
		return nil, err
	}

	// ดึง set ของโปรที่ user กดไว้ครั้งเดียว แทนที่จะ query ต่อแถว
	favIDs, err := s.Favs.PromotionIDs(userID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	data := make([]PromotionResponse, 0, len(promos))
	for _, p := range promos {
		_, fav := favIDs[p.ID]
		data = append(data, toPromotionResponse(&p, fav, now))
	}

	return &PaginatedPromotions{
		Data:       data,
		Pagination: paginate(q.Page, q.Limit, total),
	}, nil
}

// Get คืนโปรตัวเดียวพร้อม favorite flag; ถ้าไม่เจอคืน ErrPromotionNotFound
func (s *PromotionService) Get(id, userID uint) (*PromotionResponse, error) {
	promo, err := s.Promos.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, err
	}

	favIDs, err := s.Favs.PromotionIDs(userID)
	if err != nil {
		return nil, err
	}

	_, fav := favIDs[id]
	out := toPromotionResponse(promo, fav, s.Now())
	return &out, nil
}

func paginate(page, limit int, total int64) Pagination {
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

// daysUntilExpiry = ceil((expiresAt - now) / 1 วัน) ใส่เฉพาะตอนเป็นบวก
func toPromotionResponse(p *entity.Promotion, isFavorite bool, now time.Time) PromotionResponse {
	out := PromotionResponse{
		ID:             p.ID,
		Title:          p.Title,
		TitleAr:        p.TitleAr,
		Merchant:       p.Merchant,
		MerchantAr:     p.MerchantAr,
		RewardAmount:   p.RewardAmount,
		RewardCurrency: p.RewardCurrency,
		Description:    p.Description,
		DescriptionAr:  p.DescriptionAr,
		Terms:          p.Terms,
		TermsAr:        p.TermsAr,
		ThumbnailURL:   p.ThumbnailURL,
		ExpiresAt:      p.ExpiresAt,
		CreatedAt:      p.CreatedAt,
		IsFavorite:     isFavorite,
	}

	if days := int(math.Ceil(p.ExpiresAt.Sub(now).Hours() / 24)); days > 0 {
		out.DaysUntilExpiry = &days
	}

	return out
}
