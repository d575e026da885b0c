package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"comic-backend/internal/ai"
	"comic-backend/internal/config"
	"comic-backend/internal/database"
	"comic-backend/internal/generation"
	"comic-backend/internal/server"
	"comic-backend/internal/store"
)

func main() {
	// 설정 로드
	cfg := config.Load()

	// 저장소 준비 (postgres | memory)
	var db *gorm.DB
	var st store.Store

	switch cfg.Storage.Driver {
	case "memory":
		st = store.NewMemoryStore()
		log.Printf("ℹ️ Using in-memory storage (data is lost on restart)")
	default:
		var err error
		db, err = database.ConnectDB()
		if err != nil {
			log.Fatalf("❌ Database connection failed: %v", err)
		}
		defer database.Close()

		if err := database.Ping(); err != nil {
			log.Fatalf("❌ Database ping failed: %v", err)
		}
		log.Printf("✅ Database connected successfully")

		st = store.NewGormStore(db)
	}

	// Gemini 클라이언트 (대본 분해 + 이미지 렌더)
	aiClient, err := ai.NewClient(context.Background(), &cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Gemini client initialization failed: %v", err)
	}

	// 이미지 보관 방식 선택
	var images generation.ImageStore = generation.DataURIStore{}
	if cfg.Generation.ImageStore == "local" {
		local, err := generation.NewLocalImageStore(cfg.Generation.UploadsDir)
		if err != nil {
			log.Fatalf("❌ Uploads directory setup failed: %v", err)
		}
		images = local
		log.Printf("✅ Panel images stored under %s", cfg.Generation.UploadsDir)
	}

	// 패널 생성 오케스트레이터
	orchestrator := generation.New(
		st,
		aiClient,
		aiClient,
		images,
		generation.NewRenderLimiter(cfg.Generation.RendersPerMinute),
	)

	// 서버 생성 및 설정
	srv := server.New(cfg, st, orchestrator, db)
	srv.SetupMiddleware()
	srv.SetupRoutes()

	// 서버 시작
	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
