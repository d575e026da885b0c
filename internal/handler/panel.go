package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"comic-backend/internal/generation"
	"comic-backend/internal/model"
	"comic-backend/internal/store"
)

// PanelHandler 패널 핸들러
type PanelHandler struct {
	store        store.Store
	orchestrator *generation.Orchestrator
}

// NewPanelHandler PanelHandler 생성
func NewPanelHandler(st store.Store, orchestrator *generation.Orchestrator) *PanelHandler {
	return &PanelHandler{store: st, orchestrator: orchestrator}
}

// PanelResponse 말풍선을 내장한 패널 응답
type PanelResponse struct {
	model.Panel
	SpeechBubbles []model.SpeechBubble `json:"speechBubbles"`
}

// ListPanels 스토리의 패널 목록 (panelOrder 오름차순, 말풍선 포함)
// 클라이언트는 pending/generating 패널이 남아 있는 동안 이 엔드포인트를 폴링한다
func (h *PanelHandler) ListPanels(c *fiber.Ctx) error {
	storyID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid story id",
		})
	}

	panels, err := h.store.ListPanelsByStory(c.Context(), int64(storyID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to get panels",
		})
	}

	responses := make([]PanelResponse, 0, len(panels))
	for _, panel := range panels {
		bubbles, err := h.store.ListSpeechBubblesByPanel(c.Context(), panel.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "failed to get speech bubbles",
			})
		}
		responses = append(responses, PanelResponse{Panel: panel, SpeechBubbles: bubbles})
	}

	return c.JSON(responses)
}

// GeneratePanel 단일 패널 재생성 (동기)
// 일괄 생성과 달리 렌더가 끝날 때까지 응답하지 않고, 실패도 그대로 반환한다
func (h *PanelHandler) GeneratePanel(c *fiber.Ctx) error {
	panelID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid panel id",
		})
	}

	panel, err := h.orchestrator.RegeneratePanel(c.Context(), int64(panelID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Panel not found",
			})
		}
		log.Printf("⚠️ panel %d regeneration failed: %v", panelID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate image",
		})
	}

	return c.JSON(panel)
}
