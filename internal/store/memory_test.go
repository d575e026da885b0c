package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comic-backend/internal/model"
)

func TestMemoryStorePanelsOrderedByPanelOrder(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	story := &model.Story{Title: "s", Script: "script"}
	require.NoError(t, st.CreateStory(ctx, story))

	// 생성 순서와 무관하게 panelOrder 오름차순으로 조회되어야 한다
	for _, order := range []int{3, 1, 2} {
		require.NoError(t, st.CreatePanel(ctx, &model.Panel{
			StoryID:     story.ID,
			PanelOrder:  order,
			Description: "d",
			Status:      model.PanelStatusGenerating,
		}))
	}

	panels, err := st.ListPanelsByStory(ctx, story.ID)
	require.NoError(t, err)
	require.Len(t, panels, 3)
	assert.Equal(t, 1, panels[0].PanelOrder)
	assert.Equal(t, 2, panels[1].PanelOrder)
	assert.Equal(t, 3, panels[2].PanelOrder)
}

func TestMemoryStoreUpdatePanelImageSetsCompleted(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	story := &model.Story{Script: "script"}
	require.NoError(t, st.CreateStory(ctx, story))

	panel := &model.Panel{StoryID: story.ID, PanelOrder: 1, Description: "d", Status: model.PanelStatusGenerating}
	require.NoError(t, st.CreatePanel(ctx, panel))

	// 이미지 저장과 completed 전환은 한 번의 갱신
	updated, err := st.UpdatePanelImage(ctx, panel.ID, "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, model.PanelStatusCompleted, updated.Status)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, "data:image/png;base64,AAAA", *updated.ImageURL)
}

func TestMemoryStoreNotFoundSentinels(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	_, err := st.GetStory(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = st.GetPanel(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = st.UpdatePanelStatus(ctx, 42, model.PanelStatusFailed)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = st.UpdatePanelImage(ctx, 42, "url")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = st.GetSpeechBubble(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	err = st.DeleteSpeechBubble(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreBubbleLifecycle(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	story := &model.Story{Script: "script"}
	require.NoError(t, st.CreateStory(ctx, story))
	panel := &model.Panel{StoryID: story.ID, PanelOrder: 1, Description: "d", Status: model.PanelStatusCompleted}
	require.NoError(t, st.CreatePanel(ctx, panel))

	bubble := &model.SpeechBubble{PanelID: panel.ID, Text: "Hello!", Type: model.BubbleTypeSpeech, X: 10, Y: 10}
	require.NoError(t, st.CreateSpeechBubble(ctx, bubble))
	require.NotZero(t, bubble.ID)

	// 부분 수정: 텍스트와 위치만 변경, id/panelId/type은 유지
	newText := "Goodbye!"
	newX := 55
	updated, err := st.UpdateSpeechBubble(ctx, bubble.ID, BubbleUpdate{Text: &newText, X: &newX})
	require.NoError(t, err)
	assert.Equal(t, bubble.ID, updated.ID)
	assert.Equal(t, panel.ID, updated.PanelID)
	assert.Equal(t, model.BubbleTypeSpeech, updated.Type)
	assert.Equal(t, "Goodbye!", updated.Text)
	assert.Equal(t, 55, updated.X)
	assert.Equal(t, 10, updated.Y)

	// 삭제 후 목록에서 제외
	require.NoError(t, st.DeleteSpeechBubble(ctx, bubble.ID))
	bubbles, err := st.ListSpeechBubblesByPanel(ctx, panel.ID)
	require.NoError(t, err)
	assert.Empty(t, bubbles)
}

func TestMemoryStoreListStoriesByCreationTime(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	first := &model.Story{Title: "first", Script: "a"}
	second := &model.Story{Title: "second", Script: "b"}
	require.NoError(t, st.CreateStory(ctx, first))
	require.NoError(t, st.CreateStory(ctx, second))

	stories, err := st.ListStories(ctx)
	require.NoError(t, err)
	require.Len(t, stories, 2)
	assert.Equal(t, "first", stories[0].Title)
	assert.Equal(t, "second", stories[1].Title)
}

func TestMemoryStoreDefaults(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	story := &model.Story{Script: "script only"}
	require.NoError(t, st.CreateStory(ctx, story))
	assert.Equal(t, "Untitled Story", story.Title)
	assert.Equal(t, model.StyleNoir.String(), story.Style)

	panel := &model.Panel{StoryID: story.ID, PanelOrder: 1, Description: "d"}
	require.NoError(t, st.CreatePanel(ctx, panel))
	assert.Equal(t, model.PanelStatusPending, panel.Status)
}
