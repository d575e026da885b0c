package server

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"comic-backend/internal/config"
	"comic-backend/internal/generation"
	"comic-backend/internal/handler"
	"comic-backend/internal/store"
)

// Server Fiber 서버 래퍼
type Server struct {
	app           *fiber.App
	cfg           *config.Config
	storyHandler  *handler.StoryHandler
	panelHandler  *handler.PanelHandler
	bubbleHandler *handler.BubbleHandler
	healthHandler *handler.HealthHandler
}

// New 새 서버 인스턴스 생성
// db는 postgres 드라이버일 때만 전달 (헬스체크용), memory 드라이버면 nil
func New(cfg *config.Config, st store.Store, orchestrator *generation.Orchestrator, db *gorm.DB) *Server {
	app := fiber.New(fiber.Config{
		AppName:       "Comic Panel Generator",
		ServerHeader:  "Fiber",
		StrictRouting: false,
		CaseSensitive: true,
		ReadTimeout:   cfg.Server.ReadTimeout,
		WriteTimeout:  cfg.Server.WriteTimeout,
		IdleTimeout:   cfg.Server.IdleTimeout,
		// data URI로 내장된 패널 이미지가 커질 수 있음
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	return &Server{
		app:           app,
		cfg:           cfg,
		storyHandler:  handler.NewStoryHandler(st, orchestrator),
		panelHandler:  handler.NewPanelHandler(st, orchestrator),
		bubbleHandler: handler.NewBubbleHandler(st),
		healthHandler: handler.NewHealthHandler(db, cfg.Gemini.APIKey != ""),
	}
}

// App 내부 Fiber 앱 (테스트용)
func (s *Server) App() *fiber.App {
	return s.app
}

// SetupMiddleware 미들웨어 설정
func (s *Server) SetupMiddleware() {
	// 패닉 복구
	s.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// 로깅
	s.app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	// CORS
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: s.cfg.CORS.AllowOrigins,
		AllowHeaders: s.cfg.CORS.AllowHeaders,
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// 로컬 이미지 저장 모드면 업로드 디렉터리를 정적 제공
	if s.cfg.Generation.ImageStore == "local" {
		s.app.Static("/uploads", s.cfg.Generation.UploadsDir)
	}
}

// SetupRoutes 라우트 설정
func (s *Server) SetupRoutes() {
	// 헬스체크 엔드포인트
	s.app.Get("/health", s.healthHandler.Check)
	s.app.Get("/health/live", s.healthHandler.Liveness)

	// Rate Limiter 설정 (이미지 모델 호출이 비싸므로 재생성 남용 방지)
	regenerateLimiter := limiter.New(limiter.Config{
		Max:        s.cfg.Generation.RegenerateLimitPerMinute,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "too many requests, please try again later",
			})
		},
	})

	// Story 라우트 그룹
	storyGroup := s.app.Group("/api/stories")
	storyGroup.Post("/", s.storyHandler.CreateStory)
	storyGroup.Get("/", s.storyHandler.ListStories)
	storyGroup.Get("/:id", s.storyHandler.GetStory)
	storyGroup.Get("/:id/panels", s.panelHandler.ListPanels)

	// Panel 라우트 그룹
	panelGroup := s.app.Group("/api/panels")
	panelGroup.Post("/:id/generate", regenerateLimiter, s.panelHandler.GeneratePanel)
	panelGroup.Post("/:panelId/bubbles", s.bubbleHandler.CreateBubble)

	// Speech Bubble 라우트 그룹
	bubbleGroup := s.app.Group("/api/bubbles")
	bubbleGroup.Put("/:id", s.bubbleHandler.UpdateBubble)
	bubbleGroup.Delete("/:id", s.bubbleHandler.DeleteBubble)
}

// Start 서버 시작 (Graceful Shutdown 지원)
func (s *Server) Start() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("🛑 Shutting down server...")
		if err := s.app.ShutdownWithTimeout(30 * time.Second); err != nil {
			log.Fatalf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("🚀 Comic Panel Generator starting on %s", s.cfg.Server.Port)

	return s.app.Listen(s.cfg.Server.Port)
}

// Shutdown 서버 종료
func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(30 * time.Second)
}
