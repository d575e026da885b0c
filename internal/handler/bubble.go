package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"comic-backend/internal/model"
	"comic-backend/internal/store"
)

// BubbleHandler 말풍선 핸들러
type BubbleHandler struct {
	store store.Store
}

// NewBubbleHandler BubbleHandler 생성
func NewBubbleHandler(st store.Store) *BubbleHandler {
	return &BubbleHandler{store: st}
}

// CreateBubbleRequest 말풍선 생성 요청
type CreateBubbleRequest struct {
	Text   string  `json:"text"`
	Type   *string `json:"type"`
	X      *int    `json:"x"`
	Y      *int    `json:"y"`
	Width  *int    `json:"width"`
	Height *int    `json:"height"`
}

// UpdateBubbleRequest 말풍선 부분 수정 요청 (생략 필드는 유지)
type UpdateBubbleRequest struct {
	Text   *string `json:"text"`
	Type   *string `json:"type"`
	X      *int    `json:"x"`
	Y      *int    `json:"y"`
	Width  *int    `json:"width"`
	Height *int    `json:"height"`
}

// CreateBubble 패널에 말풍선 추가
func (h *BubbleHandler) CreateBubble(c *fiber.Ctx) error {
	panelID, err := c.ParamsInt("panelId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid panel id",
		})
	}

	// 존재하지 않는 패널에 말풍선을 붙일 수 없다
	if _, err := h.store.GetPanel(c.Context(), int64(panelID)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Panel not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to get panel",
		})
	}

	var req CreateBubbleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "text is required",
		})
	}

	bubbleType := model.BubbleTypeSpeech
	if req.Type != nil {
		bubbleType = model.BubbleType(*req.Type)
		if !bubbleType.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "invalid bubble type",
			})
		}
	}

	bubble := model.SpeechBubble{
		PanelID: int64(panelID),
		Text:    req.Text,
		Type:    bubbleType,
		X:       10,
		Y:       10,
		Width:   req.Width,
		Height:  req.Height,
	}
	if req.X != nil {
		bubble.X = *req.X
	}
	if req.Y != nil {
		bubble.Y = *req.Y
	}

	if err := h.store.CreateSpeechBubble(c.Context(), &bubble); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to create speech bubble",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(bubble)
}

// UpdateBubble 말풍선 부분 수정 (텍스트/타입/위치/크기)
func (h *BubbleHandler) UpdateBubble(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid bubble id",
		})
	}

	var req UpdateBubbleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}

	update := store.BubbleUpdate{
		Text:   req.Text,
		X:      req.X,
		Y:      req.Y,
		Width:  req.Width,
		Height: req.Height,
	}
	if req.Type != nil {
		bubbleType := model.BubbleType(*req.Type)
		if !bubbleType.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "invalid bubble type",
			})
		}
		update.Type = &bubbleType
	}

	bubble, err := h.store.UpdateSpeechBubble(c.Context(), int64(id), update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Speech bubble not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to update speech bubble",
		})
	}

	return c.JSON(bubble)
}

// DeleteBubble 말풍선 삭제
func (h *BubbleHandler) DeleteBubble(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid bubble id",
		})
	}

	if err := h.store.DeleteSpeechBubble(c.Context(), int64(id)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Speech bubble not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to delete speech bubble",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
