package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mhd-mansour/promotions-favorites/pkg/resp"
	"github.com/mhd-mansour/promotions-favorites/services"
	"github.com/mhd-mansour/promotions-favorites/utils"
)

type listFavoritesQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=10" binding:"min=1,max=50"`
}

type FavoriteController struct {
	Service *services.FavoriteService
}

func NewFavoriteController(db *gorm.DB) *FavoriteController {
	return &FavoriteController{Service: services.NewFavoriteService(db)}
}

// POST /promotions/:promotionId/favorite
func (ctl *FavoriteController) Add(c *gin.Context) {
	promoID, ok := promotionIDParam(c)
	if !ok {
		return
	}

	result, err := ctl.Service.Add(promoID, utils.CurrentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPromotionNotFound):
			resp.NotFound(c, "Promotion not found")
		case errors.Is(err, services.ErrPromotionExpired):
			resp.Error(c, http.StatusBadRequest, "Cannot favorite expired promotion", resp.CodePromotionExpired)
		default:
			resp.ServerError(c, "failed to favorite promotion")
		}
		return
	}

	resp.OK(c, "Promotion favorited successfully", result)
}

// DELETE /promotions/:promotionId/favorite
func (ctl *FavoriteController) Remove(c *gin.Context) {
	promoID, ok := promotionIDParam(c)
	if !ok {
		return
	}

	result, err := ctl.Service.Remove(promoID, utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrPromotionNotFound) {
			resp.NotFound(c, "Promotion not found")
			return
		}
		resp.ServerError(c, "failed to unfavorite promotion")
		return
	}

	resp.OK(c, "Promotion unfavorited successfully", result)
}

// GET /promotions/favorites?page&limit
func (ctl *FavoriteController) List(c *gin.Context) {
	var req listFavoritesQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		resp.BadRequest(c, "invalid query parameters")
		return
	}

	result, err := ctl.Service.ListForUser(services.ListQuery{Page: req.Page, Limit: req.Limit}, utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, "failed to retrieve favorites")
		return
	}

	resp.OK(c, "Favorites retrieved successfully", result)
}
