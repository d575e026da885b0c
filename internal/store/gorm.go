package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"comic-backend/internal/model"
)

// GormStore PostgreSQL(GORM) 기반 Store 구현
type GormStore struct {
	db *gorm.DB
}

// NewGormStore GormStore 생성
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// CreateStory 스토리 생성
func (s *GormStore) CreateStory(ctx context.Context, story *model.Story) error {
	return s.db.WithContext(ctx).Create(story).Error
}

// GetStory 스토리 단건 조회
func (s *GormStore) GetStory(ctx context.Context, id int64) (*model.Story, error) {
	var story model.Story
	if err := s.db.WithContext(ctx).First(&story, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &story, nil
}

// ListStories 스토리 전체 목록 (생성 시각 오름차순)
func (s *GormStore) ListStories(ctx context.Context) ([]model.Story, error) {
	stories := make([]model.Story, 0)
	err := s.db.WithContext(ctx).Order("created_at ASC").Find(&stories).Error
	return stories, err
}

// CreateCharacter 등장인물 생성
func (s *GormStore) CreateCharacter(ctx context.Context, character *model.Character) error {
	return s.db.WithContext(ctx).Create(character).Error
}

// ListCharactersByStory 스토리의 등장인물 목록
func (s *GormStore) ListCharactersByStory(ctx context.Context, storyID int64) ([]model.Character, error) {
	characters := make([]model.Character, 0)
	err := s.db.WithContext(ctx).
		Where("story_id = ?", storyID).
		Order("id ASC").
		Find(&characters).Error
	return characters, err
}

// CreatePanel 패널 생성
func (s *GormStore) CreatePanel(ctx context.Context, panel *model.Panel) error {
	return s.db.WithContext(ctx).Create(panel).Error
}

// GetPanel 패널 단건 조회
func (s *GormStore) GetPanel(ctx context.Context, id int64) (*model.Panel, error) {
	var panel model.Panel
	if err := s.db.WithContext(ctx).First(&panel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &panel, nil
}

// ListPanelsByStory 스토리의 패널 목록 (panel_order 오름차순 보장)
func (s *GormStore) ListPanelsByStory(ctx context.Context, storyID int64) ([]model.Panel, error) {
	panels := make([]model.Panel, 0)
	err := s.db.WithContext(ctx).
		Where("story_id = ?", storyID).
		Order("panel_order ASC").
		Find(&panels).Error
	return panels, err
}

// UpdatePanelImage 이미지 저장 + completed 전환 (단일 UPDATE)
func (s *GormStore) UpdatePanelImage(ctx context.Context, id int64, imageURL string) (*model.Panel, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Panel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"image_url": imageURL,
			"status":    model.PanelStatusCompleted,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetPanel(ctx, id)
}

// UpdatePanelStatus 패널 상태 갱신
func (s *GormStore) UpdatePanelStatus(ctx context.Context, id int64, status model.PanelStatus) (*model.Panel, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Panel{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetPanel(ctx, id)
}

// CreateSpeechBubble 말풍선 생성
func (s *GormStore) CreateSpeechBubble(ctx context.Context, bubble *model.SpeechBubble) error {
	return s.db.WithContext(ctx).Create(bubble).Error
}

// GetSpeechBubble 말풍선 단건 조회
func (s *GormStore) GetSpeechBubble(ctx context.Context, id int64) (*model.SpeechBubble, error) {
	var bubble model.SpeechBubble
	if err := s.db.WithContext(ctx).First(&bubble, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &bubble, nil
}

// UpdateSpeechBubble 말풍선 부분 수정
func (s *GormStore) UpdateSpeechBubble(ctx context.Context, id int64, update BubbleUpdate) (*model.SpeechBubble, error) {
	updates := map[string]any{}
	if update.Text != nil {
		updates["text"] = *update.Text
	}
	if update.Type != nil {
		updates["type"] = *update.Type
	}
	if update.X != nil {
		updates["x"] = *update.X
	}
	if update.Y != nil {
		updates["y"] = *update.Y
	}
	if update.Width != nil {
		updates["width"] = *update.Width
	}
	if update.Height != nil {
		updates["height"] = *update.Height
	}

	if len(updates) > 0 {
		result := s.db.WithContext(ctx).
			Model(&model.SpeechBubble{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.GetSpeechBubble(ctx, id)
}

// DeleteSpeechBubble 말풍선 삭제
func (s *GormStore) DeleteSpeechBubble(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&model.SpeechBubble{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListSpeechBubblesByPanel 패널의 말풍선 목록
func (s *GormStore) ListSpeechBubblesByPanel(ctx context.Context, panelID int64) ([]model.SpeechBubble, error) {
	bubbles := make([]model.SpeechBubble, 0)
	err := s.db.WithContext(ctx).
		Where("panel_id = ?", panelID).
		Order("id ASC").
		Find(&bubbles).Error
	return bubbles, err
}
