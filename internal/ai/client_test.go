package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestFirstCandidateText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: ""},
						{Text: `[{"description": "x"}]`},
					},
				},
			},
		},
	}
	assert.Equal(t, `[{"description": "x"}]`, firstCandidateText(resp))
}

func TestFirstCandidateTextEmptyResponse(t *testing.T) {
	assert.Equal(t, "", firstCandidateText(nil))
	assert.Equal(t, "", firstCandidateText(&genai.GenerateContentResponse{}))
	assert.Equal(t, "", firstCandidateText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	}))
}

func TestFirstInlineImage(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "here is your panel"},
						{InlineData: &genai.Blob{Data: []byte{1, 2, 3}, MIMEType: "image/png"}},
					},
				},
			},
		},
	}

	img := firstInlineImage(resp)
	require.NotNil(t, img)
	assert.Equal(t, []byte{1, 2, 3}, img.Data)
	assert.Equal(t, "image/png", img.MimeType)
}

func TestFirstInlineImageMissing(t *testing.T) {
	// 텍스트만 있고 이미지 파트가 없는 응답
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "sorry"}}}},
		},
	}
	assert.Nil(t, firstInlineImage(resp))
	assert.Nil(t, firstInlineImage(nil))
}
