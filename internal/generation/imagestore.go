package generation

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"comic-backend/internal/ai"
)

// ImageStore 렌더 결과 이미지를 보관하고 패널에 기록할 URL을 돌려줌
type ImageStore interface {
	Save(img *ai.RenderedImage) (string, error)
}

// DataURIStore 이미지를 data URI로 인코딩해 패널 컬럼에 그대로 내장
// (Postgres TEXT 컬럼에 base64로 저장, 별도 파일 서버 불필요)
type DataURIStore struct{}

// Save data URI 생성
func (DataURIStore) Save(img *ai.RenderedImage) (string, error) {
	mime := img.MimeType
	if mime == "" {
		mime = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(img.Data)), nil
}

// LocalImageStore 이미지를 업로드 디렉터리에 파일로 저장하고 정적 경로를 반환
// 저장 경로: <dir>/panels/<uuid>.<ext>, 반환 URL: /uploads/panels/<uuid>.<ext>
type LocalImageStore struct {
	dir string
}

// NewLocalImageStore LocalImageStore 생성 (디렉터리 준비 포함)
func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	panelDir := filepath.Join(dir, "panels")
	if err := os.MkdirAll(panelDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalImageStore{dir: dir}, nil
}

// Save 파일 저장 후 정적 제공 URL 반환
func (s *LocalImageStore) Save(img *ai.RenderedImage) (string, error) {
	name := uuid.NewString() + extensionFor(img.MimeType)
	path := filepath.Join(s.dir, "panels", name)
	if err := os.WriteFile(path, img.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write panel image: %w", err)
	}
	return "/uploads/panels/" + name, nil
}

// extensionFor MIME 타입별 파일 확장자 (미지정은 png)
func extensionFor(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
