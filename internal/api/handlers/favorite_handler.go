package handlers

import (
	"SmartMenza-Backend/domain"
	"SmartMenza-Backend/internal/api/presenters"
	"SmartMenza-Backend/pkg/favorite"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FavoriteHandler interface {
		ToggleFavorite(c *fiber.Ctx) error
		ListFavorites(c *fiber.Ctx) error
	}

	favoriteHandler struct {
		favoriteService favorite.FavoriteService
		validator       *validator.Validate
	}
)

func NewFavoriteHandler(favoriteService favorite.FavoriteService, validator *validator.Validate) FavoriteHandler {
	return &favoriteHandler{
		favoriteService: favoriteService,
		validator:       validator,
	}
}

func (h *favoriteHandler) ToggleFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ToggleFavoriteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleFavorite, err)
	}

	res, err := h.favoriteService.ToggleFavorite(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedToggleFavorite, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *favoriteHandler) ListFavorites(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.favoriteService.ListFavorites(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetFavorites, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}
