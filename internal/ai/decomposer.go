package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ScenePanel 분해된 장면 하나
type ScenePanel struct {
	Description string `json:"description"`
}

// decompositionPromptTemplate 대본 → 패널 분해 프롬프트
const decompositionPromptTemplate = `
You are a professional comic book writer.
Break down the following story script into a sequence of comic book panels.
For each panel, provide a detailed visual description suitable for an image generator.
Focus on characters, action, setting, and camera angle.

Story Script:
"%s"

Return a JSON array of objects, where each object has a "description" field.
Example: [{"description": "A dark alleyway, rain falling..."}]
Do not include markdown formatting (` + "```json" + `), just the raw JSON.
`

// Decompose 대본을 순서 있는 장면 설명 목록으로 분해
// 호출/파싱 실패는 *DecompositionError로 반환, 재시도 없음
func (c *Client) Decompose(ctx context.Context, script string) ([]ScenePanel, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	prompt := fmt.Sprintf(decompositionPromptTemplate, script)

	resp, err := c.genai.Models.GenerateContent(callCtx, c.textModel, genai.Text(prompt), nil)
	if err != nil {
		return nil, &DecompositionError{Err: err}
	}

	return parseScenePanels(firstCandidateText(resp))
}

// parseScenePanels 모델 응답 텍스트를 장면 목록으로 파싱
// 마크다운 코드펜스 정도의 노이즈는 허용하되, 구조가 다르면 에러
func parseScenePanels(text string) ([]ScenePanel, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		cleaned = "[]"
	}

	var panels []ScenePanel
	if err := json.Unmarshal([]byte(cleaned), &panels); err != nil {
		return nil, &DecompositionError{Err: fmt.Errorf("unexpected model output: %w", err)}
	}
	return panels, nil
}
