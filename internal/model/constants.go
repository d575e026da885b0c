package model

// PanelStatus 패널 생성 상태
// pending → generating → completed | failed (failed는 재생성으로 generating 재진입 가능)
type PanelStatus string

const (
	PanelStatusPending    PanelStatus = "pending"
	PanelStatusGenerating PanelStatus = "generating"
	PanelStatusCompleted  PanelStatus = "completed"
	PanelStatusFailed     PanelStatus = "failed"
)

// String 메서드
func (s PanelStatus) String() string {
	return string(s)
}

// Terminal 더 이상 진행 중이 아닌 상태인지 (클라이언트 폴링 종료 조건)
func (s PanelStatus) Terminal() bool {
	return s == PanelStatusCompleted || s == PanelStatusFailed
}

// BubbleType 말풍선 타입
type BubbleType string

const (
	BubbleTypeSpeech  BubbleType = "speech"
	BubbleTypeThought BubbleType = "thought"
	BubbleTypeCaption BubbleType = "caption"
	BubbleTypeScream  BubbleType = "scream"
)

func (t BubbleType) String() string {
	return string(t)
}

// Valid 지원하는 말풍선 타입인지 확인
func (t BubbleType) Valid() bool {
	switch t {
	case BubbleTypeSpeech, BubbleTypeThought, BubbleTypeCaption, BubbleTypeScream:
		return true
	}
	return false
}

// ComicStyle 작화 스타일
type ComicStyle string

const (
	StyleClassicMarvel ComicStyle = "Classic Marvel"
	StyleManga         ComicStyle = "Manga"
	StyleNoir          ComicStyle = "Noir Sketch"
)

func (s ComicStyle) String() string {
	return string(s)
}

const noirPromptPrefix = "noir sketch style, high contrast, gritty pencil drawings, moody shadows"

// PromptPrefix 스타일별 이미지 프롬프트 접두 문구
// 미지원 스타일은 누아르 문구로 매핑 (명시적 기본값)
func (s ComicStyle) PromptPrefix() string {
	switch s {
	case StyleClassicMarvel:
		return "vibrant comic book art style, classic marvel aesthetic, dynamic lighting"
	case StyleManga:
		return "japanese manga style, black and white screentone, sharp lines"
	case StyleNoir:
		return noirPromptPrefix
	default:
		return noirPromptPrefix
	}
}
