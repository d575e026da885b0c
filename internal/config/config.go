package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config 애플리케이션 전체 설정
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Storage    StorageConfig
	Gemini     GeminiConfig
	Generation GenerationConfig
}

// ServerConfig HTTP 서버 설정
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// CORSConfig CORS 설정
type CORSConfig struct {
	AllowOrigins string
	AllowHeaders string
}

// StorageConfig 영속화 드라이버 설정 (postgres | memory)
type StorageConfig struct {
	Driver string
}

// GeminiConfig Gemini API 설정
type GeminiConfig struct {
	APIKey     string
	BaseURL    string
	TextModel  string
	ImageModel string
	Timeout    time.Duration
}

// GenerationConfig 패널 생성 파이프라인 설정
type GenerationConfig struct {
	// ImageStore 렌더 결과 저장 방식: db(base64 data URI 컬럼 저장) | local(업로드 디렉터리 파일 저장)
	ImageStore string
	UploadsDir string
	// RendersPerMinute 일괄 생성 중 이미지 호출 페이스 제한 (0 이하면 무제한)
	RendersPerMinute int
	// RegenerateLimitPerMinute 패널 재생성 엔드포인트의 IP당 요청 제한
	RegenerateLimitPerMinute int
}

// Load 환경 변수에서 설정 로드
func Load() *Config {
	// .env 파일 로드 (없어도 에러 무시)
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️ No .env file found, using environment variables")
	}

	// Gemini 키는 필수 (두 외부 모델 호출 모두 이 키를 사용)
	apiKey := getRequiredEnv("GEMINI_API_KEY")

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", ":8080"),
			ReadTimeout:  getDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("IDLE_TIMEOUT", 120*time.Second),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
			AllowHeaders: getEnv("CORS_ALLOW_HEADERS", "Origin, Content-Type, Accept"),
		},
		Storage: StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", "postgres"),
		},
		Gemini: GeminiConfig{
			APIKey:     apiKey,
			BaseURL:    getEnv("GEMINI_BASE_URL", ""),
			TextModel:  getEnv("GEMINI_TEXT_MODEL", "gemini-2.5-flash"),
			ImageModel: getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),
			Timeout:    getDuration("GEMINI_TIMEOUT", 120*time.Second),
		},
		Generation: GenerationConfig{
			ImageStore:               getEnv("IMAGE_STORE", "db"),
			UploadsDir:               getEnv("UPLOADS_DIR", "./uploads"),
			RendersPerMinute:         getInt("GEN_RENDERS_PER_MINUTE", 0),
			RegenerateLimitPerMinute: getInt("GEN_REGENERATE_LIMIT", 10),
		},
	}
}

// getRequiredEnv 필수 환경 변수 조회 (없으면 Fatal)
func getRequiredEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("🚨 CRITICAL: Required environment variable %s is not set!", key)
	}
	return value
}

// getEnv 환경 변수 조회 (기본값 지원)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getInt 정수형 환경 변수 조회
func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getDuration 시간 환경 변수 조회
func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		// 숫자만 있으면 초로 간주
		if !strings.ContainsAny(value, "smh") {
			if secs, err := strconv.Atoi(value); err == nil {
				return time.Duration(secs) * time.Second
			}
		}
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
