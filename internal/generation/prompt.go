package generation

import (
	"fmt"
	"strings"

	"comic-backend/internal/model"
)

// CharacterDescription 등장인물 목록을 프롬프트 컨텍스트 문자열로 결합
// 각 인물은 "<name>: <description>" 형태, ". "로 구분. 인물이 없으면 빈 문자열
func CharacterDescription(characters []model.Character) string {
	parts := make([]string, 0, len(characters))
	for _, c := range characters {
		parts = append(parts, fmt.Sprintf("%s: %s", c.Name, c.Description))
	}
	return strings.Join(parts, ". ")
}

// BuildPanelPrompt 스타일 접두 문구 + 장면 설명 + 인물 컨텍스트로 렌더 프롬프트 조립
func BuildPanelPrompt(style model.ComicStyle, description, characterDescription string) string {
	return fmt.Sprintf(
		"%s. %s. Characters: %s. detailed, clean lines.",
		style.PromptPrefix(), description, characterDescription,
	)
}
