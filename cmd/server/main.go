package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jiftek/website/internal/config"
	"github.com/jiftek/website/internal/db"
	"github.com/jiftek/website/internal/handler"
	"github.com/jiftek/website/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	api := handler.NewAPI(db.DB, cfg.UploadDir, cfg.UploadURLPath)
	r := router.Setup(api, router.Options{
		SessionSecret: cfg.SessionSecret,
		UploadDir:     cfg.UploadDir,
		UploadURLPath: cfg.UploadURLPath,
	})

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
