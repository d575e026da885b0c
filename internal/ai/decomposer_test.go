package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenePanels(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []ScenePanel
	}{
		{
			name: "raw json array",
			text: `[{"description": "A dark alleyway"}, {"description": "Rain falling"}]`,
			want: []ScenePanel{{Description: "A dark alleyway"}, {Description: "Rain falling"}},
		},
		{
			name: "json fenced in markdown",
			text: "```json\n[{\"description\": \"A dark alleyway\"}]\n```",
			want: []ScenePanel{{Description: "A dark alleyway"}},
		},
		{
			name: "bare fence without language tag",
			text: "```\n[{\"description\": \"Cliff at dawn\"}]\n```",
			want: []ScenePanel{{Description: "Cliff at dawn"}},
		},
		{
			name: "surrounding whitespace",
			text: "\n\n  [{\"description\": \"x\"}]  \n",
			want: []ScenePanel{{Description: "x"}},
		},
		{
			name: "empty response treated as empty list",
			text: "",
			want: []ScenePanel{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScenePanels(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScenePanelsMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "prose instead of json", text: "Sure! Here are your panels: first, a dark alleyway..."},
		{name: "object instead of array", text: `{"description": "A dark alleyway"}`},
		{name: "truncated array", text: `[{"description": "A dark alleyway"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseScenePanels(tt.text)
			require.Error(t, err)

			// 파싱 실패는 분해 전체의 하드 에러로 분류된다
			var decompErr *DecompositionError
			assert.ErrorAs(t, err, &decompErr)
		})
	}
}
