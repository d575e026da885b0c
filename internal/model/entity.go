package model

import (
	"time"
)

// Story 스토리 (제출된 대본 + 생성된 패널/캐릭터의 소유자)
type Story struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"type:varchar(200);not null;default:'Untitled Story'" json:"title"`
	Script    string    `gorm:"type:text;not null" json:"script"` // 원본 대본, 생성 후 불변
	Style     string    `gorm:"type:varchar(50);not null;default:'Noir Sketch'" json:"style"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Relations
	Characters []Character `gorm:"foreignKey:StoryID" json:"characters,omitempty"`
	Panels     []Panel     `gorm:"foreignKey:StoryID" json:"panels,omitempty"`
}

func (Story) TableName() string {
	return "stories"
}

// Character 등장인물 (스토리 생성 시에만 등록, 프롬프트 컨텍스트로만 사용)
type Character struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	StoryID     int64  `gorm:"not null;index" json:"storyId"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"` // "A tall man with a red hat"

	// Relations
	Story *Story `gorm:"foreignKey:StoryID" json:"story,omitempty"`
}

func (Character) TableName() string {
	return "characters"
}

// Panel 컷(패널). PanelOrder는 분해 순서 기준 1부터, 생성 후 재할당 없음
type Panel struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	StoryID     int64       `gorm:"not null;index" json:"storyId"`
	PanelOrder  int         `gorm:"not null" json:"panelOrder"`
	Description string      `gorm:"type:text;not null" json:"description"`
	ImageURL    *string     `gorm:"type:text" json:"imageUrl"` // 렌더 성공 전까지 null
	Status      PanelStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// Relations
	Story         *Story         `gorm:"foreignKey:StoryID" json:"story,omitempty"`
	SpeechBubbles []SpeechBubble `gorm:"foreignKey:PanelID" json:"speechBubbles,omitempty"`
}

func (Panel) TableName() string {
	return "panels"
}

// SpeechBubble 말풍선. 좌표는 패널 컨테이너 기준 절대 픽셀
type SpeechBubble struct {
	ID      int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	PanelID int64      `gorm:"not null;index" json:"panelId"`
	Text    string     `gorm:"type:text;not null" json:"text"`
	Type    BubbleType `gorm:"type:varchar(20);not null;default:'speech'" json:"type"`
	X       int        `gorm:"not null;default:10" json:"x"`
	Y       int        `gorm:"not null;default:10" json:"y"`
	Width   *int       `json:"width"`
	Height  *int       `json:"height"`

	// Relations
	Panel *Panel `gorm:"foreignKey:PanelID" json:"panel,omitempty"`
}

func (SpeechBubble) TableName() string {
	return "speech_bubbles"
}
