package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"comic-backend/internal/model"
)

func TestCharacterDescription(t *testing.T) {
	tests := []struct {
		name       string
		characters []model.Character
		want       string
	}{
		{
			name:       "no characters",
			characters: nil,
			want:       "",
		},
		{
			name: "single character",
			characters: []model.Character{
				{Name: "Hero", Description: "a tall man"},
			},
			want: "Hero: a tall man",
		},
		{
			name: "multiple characters joined with period-space",
			characters: []model.Character{
				{Name: "Hero", Description: "a tall man"},
				{Name: "Dog", Description: "a small terrier"},
			},
			want: "Hero: a tall man. Dog: a small terrier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CharacterDescription(tt.characters))
		})
	}
}

func TestBuildPanelPrompt(t *testing.T) {
	got := BuildPanelPrompt(model.StyleClassicMarvel, "Hero leaps across rooftops", "Hero: a tall man")
	assert.Equal(t,
		"vibrant comic book art style, classic marvel aesthetic, dynamic lighting. "+
			"Hero leaps across rooftops. "+
			"Characters: Hero: a tall man. "+
			"detailed, clean lines.",
		got,
	)
}

func TestBuildPanelPromptWithoutCharacters(t *testing.T) {
	got := BuildPanelPrompt(model.StyleNoir, "Empty street at night", "")
	assert.Equal(t,
		"noir sketch style, high contrast, gritty pencil drawings, moody shadows. "+
			"Empty street at night. "+
			"Characters: . "+
			"detailed, clean lines.",
		got,
	)
}
