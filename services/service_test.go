package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mhd-mansour/promotions-favorites/entity"
)

// เวลาอ้างอิงคงที่ ใช้แทน time.Now ในทุกเทส
var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// named in-memory DB กันแต่ละเทสชนกัน และกัน connection pool เปิดคนละ DB
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.User{}, &entity.Promotion{}, &entity.Favorite{}, &entity.AuditEvent{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedPromotion(t *testing.T, db *gorm.DB, title, merchant string, reward float64, createdAt, expiresAt time.Time) entity.Promotion {
	t.Helper()
	p := entity.Promotion{
		Title:          title,
		Merchant:       merchant,
		RewardAmount:   reward,
		RewardCurrency: "USD",
		ExpiresAt:      expiresAt,
	}
	p.CreatedAt = createdAt
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed promotion %q: %v", title, err)
	}
	return p
}

func countFavorites(t *testing.T, db *gorm.DB, userID, promotionID uint) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&entity.Favorite{}).
		Where("user_id = ? AND promotion_id = ?", userID, promotionID).
		Count(&n).Error; err != nil {
		t.Fatalf("count favorites: %v", err)
	}
	return n
}
