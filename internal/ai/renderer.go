package ai

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// RenderedImage 렌더 결과 이미지
type RenderedImage struct {
	Data     []byte
	MimeType string
}

// Render 프롬프트 하나로 패널 이미지 생성
// 느리고 실패할 수 있는 원격 호출 하나로 취급, 내부 재시도 없음
func (c *Client) Render(ctx context.Context, prompt string) (*RenderedImage, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}

	resp, err := c.genai.Models.GenerateContent(callCtx, c.imageModel, genai.Text(prompt), cfg)
	if err != nil {
		return nil, &RenderError{Err: err}
	}

	img := firstInlineImage(resp)
	if img == nil {
		return nil, &RenderError{Err: errors.New("model response contains no image data")}
	}
	return img, nil
}
