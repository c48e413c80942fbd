package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mhd-mansour/promotions-favorites/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	// TranslateError จำเป็นสำหรับ gorm.ErrDuplicatedKey ตอนกด favorite ซ้ำพร้อมกัน
	database, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.Promotion{},
		&entity.Favorite{},
		&entity.AuditEvent{},
	)
}
