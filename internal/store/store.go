package store

import (
	"context"
	"errors"

	"comic-backend/internal/model"
)

// ErrNotFound 조회 대상 레코드 없음
var ErrNotFound = errors.New("record not found")

// BubbleUpdate 말풍선 부분 수정 (nil 필드는 유지)
type BubbleUpdate struct {
	Text   *string
	Type   *model.BubbleType
	X      *int
	Y      *int
	Width  *int
	Height *int
}

// Store 스토리/캐릭터/패널/말풍선 영속화 계층
type Store interface {
	// Stories
	CreateStory(ctx context.Context, story *model.Story) error
	GetStory(ctx context.Context, id int64) (*model.Story, error)
	ListStories(ctx context.Context) ([]model.Story, error)

	// Characters
	CreateCharacter(ctx context.Context, character *model.Character) error
	ListCharactersByStory(ctx context.Context, storyID int64) ([]model.Character, error)

	// Panels
	CreatePanel(ctx context.Context, panel *model.Panel) error
	GetPanel(ctx context.Context, id int64) (*model.Panel, error)
	ListPanelsByStory(ctx context.Context, storyID int64) ([]model.Panel, error)
	// UpdatePanelImage 이미지 URL 저장 + completed 전환을 단일 UPDATE로 수행
	UpdatePanelImage(ctx context.Context, id int64, imageURL string) (*model.Panel, error)
	UpdatePanelStatus(ctx context.Context, id int64, status model.PanelStatus) (*model.Panel, error)

	// Speech Bubbles
	CreateSpeechBubble(ctx context.Context, bubble *model.SpeechBubble) error
	GetSpeechBubble(ctx context.Context, id int64) (*model.SpeechBubble, error)
	UpdateSpeechBubble(ctx context.Context, id int64, update BubbleUpdate) (*model.SpeechBubble, error)
	DeleteSpeechBubble(ctx context.Context, id int64) error
	ListSpeechBubblesByPanel(ctx context.Context, panelID int64) ([]model.SpeechBubble, error)
}
