package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mhd-mansour/promotions-favorites/pkg/resp"
	"github.com/mhd-mansour/promotions-favorites/services"
	"github.com/mhd-mansour/promotions-favorites/utils"
)

// query params ผ่าน validation ตรงนี้ก่อนถึง service
type listPromotionsQuery struct {
	Page          int    `form:"page,default=1" binding:"min=1"`
	Limit         int    `form:"limit,default=10" binding:"min=1,max=50"`
	Q             string `form:"q"`
	Merchant      string `form:"merchant"`
	ExpiresBefore string `form:"expiresBefore"`
	ExpiresAfter  string `form:"expiresAfter"`
}

type PromotionController struct {
	Service *services.PromotionService
}

func NewPromotionController(db *gorm.DB) *PromotionController {
	return &PromotionController{Service: services.NewPromotionService(db)}
}

// GET /promotions?page&limit&q&merchant&expiresBefore&expiresAfter
func (ctl *PromotionController) List(c *gin.Context) {
	var req listPromotionsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		resp.BadRequest(c, "invalid query parameters")
		return
	}

	query := services.ListQuery{
		Page:     req.Page,
		Limit:    req.Limit,
		Q:        req.Q,
		Merchant: req.Merchant,
	}

	if req.ExpiresBefore != "" {
		t, err := parseDateTime(req.ExpiresBefore)
		if err != nil {
			resp.BadRequest(c, "expiresBefore must be an ISO date-time")
			return
		}
		query.ExpiresBefore = &t
	}
	if req.ExpiresAfter != "" {
		t, err := parseDateTime(req.ExpiresAfter)
		if err != nil {
			resp.BadRequest(c, "expiresAfter must be an ISO date-time")
			return
		}
		query.ExpiresAfter = &t
	}

	result, err := ctl.Service.List(query, utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, "failed to retrieve promotions")
		return
	}

	resp.OK(c, "Promotions retrieved successfully", result)
}

// GET /promotions/:promotionId
func (ctl *PromotionController) Detail(c *gin.Context) {
	id, ok := promotionIDParam(c)
	if !ok {
		return
	}

	promo, err := ctl.Service.Get(id, utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrPromotionNotFound) {
			resp.NotFound(c, "Promotion not found")
			return
		}
		resp.ServerError(c, "failed to retrieve promotion")
		return
	}

	resp.OK(c, "Promotion retrieved successfully", promo)
}

// รับ :promotionId จาก URL; ถ้าใช้ไม่ได้ตอบ 400 เลย
func promotionIDParam(c *gin.Context) (uint, bool) {
	n, err := strconv.Atoi(c.Param("promotionId"))
	if err != nil || n <= 0 {
		resp.BadRequest(c, "invalid promotion id")
		return 0, false
	}
	return uint(n), true
}

// รองรับทั้ง RFC3339 เต็มและแบบวันที่อย่างเดียว
func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
