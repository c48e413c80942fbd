package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/mhd-mansour/promotions-favorites/configs"
	"github.com/mhd-mansour/promotions-favorites/middlewares"
	"github.com/mhd-mansour/promotions-favorites/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	// โปรโมชั่นสร้างจาก seed เท่านั้น (ไม่มี endpoint สร้าง/แก้)
	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedPromotions(); err != nil {
		log.Fatalf("seed promotions failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
