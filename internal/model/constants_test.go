package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComicStylePromptPrefix(t *testing.T) {
	tests := []struct {
		style ComicStyle
		want  string
	}{
		{StyleClassicMarvel, "vibrant comic book art style, classic marvel aesthetic, dynamic lighting"},
		{StyleManga, "japanese manga style, black and white screentone, sharp lines"},
		{StyleNoir, "noir sketch style, high contrast, gritty pencil drawings, moody shadows"},
		// 미지원 스타일은 명시적으로 누아르 문구에 매핑
		{ComicStyle("Watercolor"), "noir sketch style, high contrast, gritty pencil drawings, moody shadows"},
		{ComicStyle(""), "noir sketch style, high contrast, gritty pencil drawings, moody shadows"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.style.PromptPrefix(), "style %q", tt.style)
	}
}

func TestPanelStatusTerminal(t *testing.T) {
	assert.False(t, PanelStatusPending.Terminal())
	assert.False(t, PanelStatusGenerating.Terminal())
	assert.True(t, PanelStatusCompleted.Terminal())
	assert.True(t, PanelStatusFailed.Terminal())
}

func TestBubbleTypeValid(t *testing.T) {
	for _, valid := range []BubbleType{BubbleTypeSpeech, BubbleTypeThought, BubbleTypeCaption, BubbleTypeScream} {
		assert.True(t, valid.Valid(), "type %q", valid)
	}
	assert.False(t, BubbleType("whisper").Valid())
	assert.False(t, BubbleType("").Valid())
}
