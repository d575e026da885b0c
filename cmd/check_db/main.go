package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// 생성 파이프라인 상태 점검용 유틸리티:
// 스토리/패널 집계와 generating에 멈춰 있는 패널(프로세스 재시작 등으로
// 종료 상태에 도달하지 못한 것)을 출력한다.
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Database connection
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "comic"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	fmt.Println("✅ Connected to database")
	fmt.Println()

	var storyCount int64
	if err := db.Table("stories").Count(&storyCount).Error; err != nil {
		log.Fatal("Failed to count stories:", err)
	}
	fmt.Printf("📚 Stories: %d\n", storyCount)

	// 상태별 패널 집계
	type StatusCount struct {
		Status string
		Count  int64
	}
	var statusCounts []StatusCount
	if err := db.Table("panels").
		Select("status, count(*) as count").
		Group("status").
		Order("status").
		Scan(&statusCounts).Error; err != nil {
		log.Fatal("Failed to count panels:", err)
	}

	fmt.Println("🎞 Panels by status:")
	for _, sc := range statusCounts {
		fmt.Printf("   %-12s %d\n", sc.Status, sc.Count)
	}
	fmt.Println()

	// generating에 멈춘 패널 (일괄 생성 도중 프로세스가 죽으면 남는다)
	type StuckPanel struct {
		ID         int64
		StoryID    int64
		PanelOrder int
	}
	var stuck []StuckPanel
	if err := db.Table("panels").
		Select("id, story_id, panel_order").
		Where("status = ?", "generating").
		Order("story_id, panel_order").
		Scan(&stuck).Error; err != nil {
		log.Fatal("Failed to list generating panels:", err)
	}

	if len(stuck) == 0 {
		fmt.Println("✅ No panels stuck in generating")
		return
	}

	fmt.Printf("⚠️ %d panel(s) stuck in generating:\n", len(stuck))
	for _, p := range stuck {
		fmt.Printf("   panel %d (story %d, order %d)\n", p.ID, p.StoryID, p.PanelOrder)
	}
	fmt.Println()
	fmt.Println("Hint: POST /api/panels/:id/generate to retry a stuck panel.")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
