package ai

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"comic-backend/internal/config"
)

// Client Gemini API 클라이언트 래퍼
// 대본 분해(텍스트 모델)와 패널 렌더(이미지 모델)를 모두 담당
type Client struct {
	genai      *genai.Client
	textModel  string
	imageModel string
	timeout    time.Duration
}

// NewClient Gemini 클라이언트 생성
func NewClient(ctx context.Context, cfg *config.GeminiConfig) (*Client, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		genai:      client,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		timeout:    cfg.Timeout,
	}, nil
}

// callContext 모델 호출용 컨텍스트 (타임아웃 적용)
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// firstCandidateText 첫 번째 후보의 텍스트 파트 추출 (없으면 빈 문자열)
func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			return part.Text
		}
	}
	return ""
}

// firstInlineImage 첫 번째 후보의 인라인 이미지 파트 추출 (없으면 nil)
func firstInlineImage(resp *genai.GenerateContentResponse) *RenderedImage {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return &RenderedImage{
				Data:     part.InlineData.Data,
				MimeType: part.InlineData.MIMEType,
			}
		}
	}
	return nil
}
