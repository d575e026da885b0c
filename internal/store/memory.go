package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"comic-backend/internal/model"
)

// MemoryStore 인메모리 Store 구현
// 로컬 개발(DB 없이 실행)과 테스트에서 사용. 재시작하면 데이터가 사라진다
type MemoryStore struct {
	mu sync.RWMutex

	stories    map[int64]model.Story
	characters map[int64]model.Character
	panels     map[int64]model.Panel
	bubbles    map[int64]model.SpeechBubble

	nextID int64
}

// NewMemoryStore MemoryStore 생성
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		stories:    make(map[int64]model.Story),
		characters: make(map[int64]model.Character),
		panels:     make(map[int64]model.Panel),
		bubbles:    make(map[int64]model.SpeechBubble),
	}
}

func (s *MemoryStore) allocID() int64 {
	s.nextID++
	return s.nextID
}

// CreateStory 스토리 생성
func (s *MemoryStore) CreateStory(_ context.Context, story *model.Story) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	story.ID = s.allocID()
	if story.Title == "" {
		story.Title = "Untitled Story"
	}
	if story.Style == "" {
		story.Style = model.StyleNoir.String()
	}
	if story.CreatedAt.IsZero() {
		story.CreatedAt = time.Now()
	}
	s.stories[story.ID] = *story
	return nil
}

// GetStory 스토리 단건 조회
func (s *MemoryStore) GetStory(_ context.Context, id int64) (*model.Story, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	story, ok := s.stories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &story, nil
}

// ListStories 스토리 전체 목록 (생성 시각 오름차순)
func (s *MemoryStore) ListStories(_ context.Context) ([]model.Story, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stories := make([]model.Story, 0, len(s.stories))
	for _, story := range s.stories {
		stories = append(stories, story)
	}
	sort.Slice(stories, func(i, j int) bool {
		if stories[i].CreatedAt.Equal(stories[j].CreatedAt) {
			return stories[i].ID < stories[j].ID
		}
		return stories[i].CreatedAt.Before(stories[j].CreatedAt)
	})
	return stories, nil
}

// CreateCharacter 등장인물 생성
func (s *MemoryStore) CreateCharacter(_ context.Context, character *model.Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	character.ID = s.allocID()
	s.characters[character.ID] = *character
	return nil
}

// ListCharactersByStory 스토리의 등장인물 목록
func (s *MemoryStore) ListCharactersByStory(_ context.Context, storyID int64) ([]model.Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	characters := make([]model.Character, 0)
	for _, c := range s.characters {
		if c.StoryID == storyID {
			characters = append(characters, c)
		}
	}
	sort.Slice(characters, func(i, j int) bool { return characters[i].ID < characters[j].ID })
	return characters, nil
}

// CreatePanel 패널 생성
func (s *MemoryStore) CreatePanel(_ context.Context, panel *model.Panel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	panel.ID = s.allocID()
	if panel.Status == "" {
		panel.Status = model.PanelStatusPending
	}
	s.panels[panel.ID] = *panel
	return nil
}

// GetPanel 패널 단건 조회
func (s *MemoryStore) GetPanel(_ context.Context, id int64) (*model.Panel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	panel, ok := s.panels[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &panel, nil
}

// ListPanelsByStory 스토리의 패널 목록 (panel_order 오름차순 보장)
func (s *MemoryStore) ListPanelsByStory(_ context.Context, storyID int64) ([]model.Panel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	panels := make([]model.Panel, 0)
	for _, p := range s.panels {
		if p.StoryID == storyID {
			panels = append(panels, p)
		}
	}
	sort.Slice(panels, func(i, j int) bool { return panels[i].PanelOrder < panels[j].PanelOrder })
	return panels, nil
}

// UpdatePanelImage 이미지 저장 + completed 전환 (단일 갱신)
func (s *MemoryStore) UpdatePanelImage(_ context.Context, id int64, imageURL string) (*model.Panel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	panel, ok := s.panels[id]
	if !ok {
		return nil, ErrNotFound
	}
	panel.ImageURL = &imageURL
	panel.Status = model.PanelStatusCompleted
	s.panels[id] = panel
	return &panel, nil
}

// UpdatePanelStatus 패널 상태 갱신
func (s *MemoryStore) UpdatePanelStatus(_ context.Context, id int64, status model.PanelStatus) (*model.Panel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	panel, ok := s.panels[id]
	if !ok {
		return nil, ErrNotFound
	}
	panel.Status = status
	s.panels[id] = panel
	return &panel, nil
}

// CreateSpeechBubble 말풍선 생성
func (s *MemoryStore) CreateSpeechBubble(_ context.Context, bubble *model.SpeechBubble) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bubble.ID = s.allocID()
	if bubble.Type == "" {
		bubble.Type = model.BubbleTypeSpeech
	}
	s.bubbles[bubble.ID] = *bubble
	return nil
}

// GetSpeechBubble 말풍선 단건 조회
func (s *MemoryStore) GetSpeechBubble(_ context.Context, id int64) (*model.SpeechBubble, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bubble, ok := s.bubbles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &bubble, nil
}

// UpdateSpeechBubble 말풍선 부분 수정
func (s *MemoryStore) UpdateSpeechBubble(_ context.Context, id int64, update BubbleUpdate) (*model.SpeechBubble, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bubble, ok := s.bubbles[id]
	if !ok {
		return nil, ErrNotFound
	}
	if update.Text != nil {
		bubble.Text = *update.Text
	}
	if update.Type != nil {
		bubble.Type = *update.Type
	}
	if update.X != nil {
		bubble.X = *update.X
	}
	if update.Y != nil {
		bubble.Y = *update.Y
	}
	if update.Width != nil {
		bubble.Width = update.Width
	}
	if update.Height != nil {
		bubble.Height = update.Height
	}
	s.bubbles[id] = bubble
	return &bubble, nil
}

// DeleteSpeechBubble 말풍선 삭제
func (s *MemoryStore) DeleteSpeechBubble(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bubbles[id]; !ok {
		return ErrNotFound
	}
	delete(s.bubbles, id)
	return nil
}

// ListSpeechBubblesByPanel 패널의 말풍선 목록
func (s *MemoryStore) ListSpeechBubblesByPanel(_ context.Context, panelID int64) ([]model.SpeechBubble, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bubbles := make([]model.SpeechBubble, 0)
	for _, b := range s.bubbles {
		if b.PanelID == panelID {
			bubbles = append(bubbles, b)
		}
	}
	sort.Slice(bubbles, func(i, j int) bool { return bubbles[i].ID < bubbles[j].ID })
	return bubbles, nil
}
