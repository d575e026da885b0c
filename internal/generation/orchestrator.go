package generation

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"comic-backend/internal/ai"
	"comic-backend/internal/model"
	"comic-backend/internal/store"
)

// ScriptDecomposer 대본 → 장면 목록 분해 계약
type ScriptDecomposer interface {
	Decompose(ctx context.Context, script string) ([]ai.ScenePanel, error)
}

// ImageRenderer 프롬프트 → 이미지 렌더 계약
type ImageRenderer interface {
	Render(ctx context.Context, prompt string) (*ai.RenderedImage, error)
}

// Orchestrator 패널 생성 파이프라인 조정자
// 일괄 생성(스토리 생성 직후, 분리 실행)과 단일 패널 재생성(동기)을 담당
type Orchestrator struct {
	store      store.Store
	decomposer ScriptDecomposer
	renderer   ImageRenderer
	images     ImageStore
	limiter    *rate.Limiter
}

// New Orchestrator 생성
func New(st store.Store, decomposer ScriptDecomposer, renderer ImageRenderer, images ImageStore, limiter *rate.Limiter) *Orchestrator {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &Orchestrator{
		store:      st,
		decomposer: decomposer,
		renderer:   renderer,
		images:     images,
		limiter:    limiter,
	}
}

// NewRenderLimiter 분당 렌더 호출 수 기준 rate.Limiter 생성 (rpm <= 0 이면 무제한)
func NewRenderLimiter(rpm int) *rate.Limiter {
	if rpm <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1)
}

// GenerateStory 일괄 생성 실행 (스토리 생성 요청과 분리된 백그라운드 작업)
//
// 1. 대본 분해 — 실패하면 로그만 남기고 중단 (패널 0개 유지)
// 2. 등장인물 컨텍스트 조립
// 3. 장면 순서대로: generating 패널 생성 → 렌더 → completed/failed 기록
//
// 패널 하나의 렌더 실패는 이후 패널 처리를 중단시키지 않는다.
// 에러는 HTTP로 전파될 곳이 없으므로 반환하지 않는다.
func (o *Orchestrator) GenerateStory(ctx context.Context, storyID int64) {
	jobID := uuid.NewString()[:8]

	story, err := o.store.GetStory(ctx, storyID)
	if err != nil {
		log.Printf("❌ [gen %s] story %d lookup failed: %v", jobID, storyID, err)
		return
	}

	scenes, err := o.decomposer.Decompose(ctx, story.Script)
	if err != nil {
		// 분해 실패는 일괄 생성 전체의 하드 에러. 패널은 만들지 않는다
		log.Printf("❌ [gen %s] story %d decomposition failed: %v", jobID, storyID, err)
		return
	}
	log.Printf("🎬 [gen %s] story %d decomposed into %d panels", jobID, storyID, len(scenes))

	characters, err := o.store.ListCharactersByStory(ctx, storyID)
	if err != nil {
		log.Printf("❌ [gen %s] story %d character lookup failed: %v", jobID, storyID, err)
		return
	}
	characterDesc := CharacterDescription(characters)

	for i, scene := range scenes {
		panel := &model.Panel{
			StoryID:     storyID,
			PanelOrder:  i + 1,
			Description: scene.Description,
			Status:      model.PanelStatusGenerating,
		}
		// 클라이언트가 진행 상황을 바로 관찰할 수 있도록 렌더 전에 먼저 저장
		if err := o.store.CreatePanel(ctx, panel); err != nil {
			log.Printf("❌ [gen %s] panel %d/%d create failed: %v", jobID, i+1, len(scenes), err)
			continue
		}

		prompt := BuildPanelPrompt(model.ComicStyle(story.Style), scene.Description, characterDesc)
		if err := o.renderPanel(ctx, panel.ID, prompt); err != nil {
			log.Printf("⚠️ [gen %s] panel %d (order %d) render failed: %v", jobID, panel.ID, panel.PanelOrder, err)
			if _, err := o.store.UpdatePanelStatus(ctx, panel.ID, model.PanelStatusFailed); err != nil {
				log.Printf("❌ [gen %s] panel %d status update failed: %v", jobID, panel.ID, err)
			}
			continue
		}
	}
	log.Printf("✅ [gen %s] story %d bulk generation finished", jobID, storyID)
}

// RegeneratePanel 단일 패널 재생성 (호출자가 완료까지 대기)
// 렌더 실패는 패널을 failed로 남기고 호출자에게 그대로 반환된다
func (o *Orchestrator) RegeneratePanel(ctx context.Context, panelID int64) (*model.Panel, error) {
	panel, err := o.store.GetPanel(ctx, panelID)
	if err != nil {
		return nil, err
	}

	// 스토리/인물은 생성 시점 캐시가 아니라 매번 다시 조회
	story, err := o.store.GetStory(ctx, panel.StoryID)
	if err != nil {
		return nil, err
	}
	characters, err := o.store.ListCharactersByStory(ctx, panel.StoryID)
	if err != nil {
		return nil, err
	}

	if _, err := o.store.UpdatePanelStatus(ctx, panelID, model.PanelStatusGenerating); err != nil {
		return nil, err
	}

	prompt := BuildPanelPrompt(model.ComicStyle(story.Style), panel.Description, CharacterDescription(characters))
	if err := o.renderPanel(ctx, panelID, prompt); err != nil {
		if _, stErr := o.store.UpdatePanelStatus(ctx, panelID, model.PanelStatusFailed); stErr != nil {
			log.Printf("❌ panel %d status update failed: %v", panelID, stErr)
		}
		return nil, err
	}

	return o.store.GetPanel(ctx, panelID)
}

// renderPanel 렌더 호출 한 번 + 이미지 보관 + completed 기록
func (o *Orchestrator) renderPanel(ctx context.Context, panelID int64, prompt string) error {
	if err := o.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("render pacing interrupted: %w", err)
	}

	img, err := o.renderer.Render(ctx, prompt)
	if err != nil {
		return err
	}

	imageURL, err := o.images.Save(img)
	if err != nil {
		return fmt.Errorf("failed to persist rendered image: %w", err)
	}

	if _, err := o.store.UpdatePanelImage(ctx, panelID, imageURL); err != nil {
		return fmt.Errorf("failed to update panel image: %w", err)
	}
	return nil
}
