package handler

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"comic-backend/internal/generation"
	"comic-backend/internal/model"
	"comic-backend/internal/store"
)

// StoryHandler 스토리 핸들러
type StoryHandler struct {
	store        store.Store
	orchestrator *generation.Orchestrator
}

// NewStoryHandler StoryHandler 생성
func NewStoryHandler(st store.Store, orchestrator *generation.Orchestrator) *StoryHandler {
	return &StoryHandler{store: st, orchestrator: orchestrator}
}

// CreateStoryRequest 스토리 생성 요청
type CreateStoryRequest struct {
	Title      string                   `json:"title"`
	Script     string                   `json:"script"`
	Style      string                   `json:"style"`
	Characters []CreateCharacterRequest `json:"characters"`
}

// CreateCharacterRequest 스토리 생성에 포함되는 등장인물
type CreateCharacterRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateStory 스토리 생성 + 일괄 패널 생성 트리거
// 생성 파이프라인은 분리 실행되므로 201 응답은 패널 완성을 기다리지 않는다
func (h *StoryHandler) CreateStory(c *fiber.Ctx) error {
	var req CreateStoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}

	if req.Script == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "script is required",
		})
	}
	for _, char := range req.Characters {
		if char.Name == "" || char.Description == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "character name and description are required",
			})
		}
	}

	title := req.Title
	if title == "" {
		title = "Untitled Story"
	}
	style := req.Style
	if style == "" {
		style = model.StyleNoir.String()
	}

	story := model.Story{
		Title:  title,
		Script: req.Script,
		Style:  style,
	}
	if err := h.store.CreateStory(c.Context(), &story); err != nil {
		log.Printf("❌ story create failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to create story",
		})
	}

	for _, char := range req.Characters {
		character := model.Character{
			StoryID:     story.ID,
			Name:        char.Name,
			Description: char.Description,
		}
		if err := h.store.CreateCharacter(c.Context(), &character); err != nil {
			log.Printf("❌ character create failed (story %d): %v", story.ID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "failed to create character",
			})
		}
	}

	// 분리 실행: 요청 컨텍스트와 무관하게 끝까지 돈다
	go h.orchestrator.GenerateStory(context.Background(), story.ID)

	return c.Status(fiber.StatusCreated).JSON(story)
}

// ListStories 스토리 전체 목록
func (h *StoryHandler) ListStories(c *fiber.Ctx) error {
	stories, err := h.store.ListStories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to list stories",
		})
	}
	return c.JSON(stories)
}

// GetStory 스토리 단건 조회 (패널 + 등장인물 포함)
func (h *StoryHandler) GetStory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid story id",
		})
	}

	story, err := h.store.GetStory(c.Context(), int64(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Story not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to get story",
		})
	}

	panels, err := h.store.ListPanelsByStory(c.Context(), story.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to get panels",
		})
	}
	characters, err := h.store.ListCharactersByStory(c.Context(), story.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to get characters",
		})
	}

	story.Panels = panels
	story.Characters = characters
	return c.JSON(story)
}
