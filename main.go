package main

import (
	"fmt"
	"log"
	"os"

	"github.com/coldup-cpu/skfood/configs"
	"github.com/coldup-cpu/skfood/middlewares"
	"github.com/coldup-cpu/skfood/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("create upload dir failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// sabji images uploaded from the admin panel
	r.Static("/uploads", "./"+cfg.UploadDir)

	routes.RegisterValidators()
	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("SKFood server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
