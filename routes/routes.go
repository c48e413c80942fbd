package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mhd-mansour/promotions-favorites/configs"
	"github.com/mhd-mansour/promotions-favorites/controllers"
	"github.com/mhd-mansour/promotions-favorites/middlewares"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	promoCtrl := controllers.NewPromotionController(db)
	favCtrl := controllers.NewFavoriteController(db)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Promotions (ทุก endpoint ต้องรู้ว่า user คือใคร เพราะมี favorite flag)
	p := r.Group("/promotions", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		p.GET("", promoCtrl.List)
		p.GET("/favorites", favCtrl.List)
		p.GET("/:promotionId", promoCtrl.Detail)
		p.POST("/:promotionId/favorite", favCtrl.Add)
		p.DELETE("/:promotionId/favorite", favCtrl.Remove)
	}
}
