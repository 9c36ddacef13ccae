package handlers

import (
	"SmartMenza-Backend/domain"
	"SmartMenza-Backend/internal/api/presenters"
	"SmartMenza-Backend/pkg/menu"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		GetMenuByDate(c *fiber.Ctx) error
		GetMenusByDate(c *fiber.Ctx) error
		CreateMenu(c *fiber.Ctx) error
		CreateMeal(c *fiber.Ctx) error
		UploadMealImage(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func (h *menuHandler) GetMenuByDate(c *fiber.Ctx) error {
	date := c.Query("date")

	res, err := h.menuService.GetMenuByDate(c.Context(), date)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetMenu, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *menuHandler) GetMenusByDate(c *fiber.Ctx) error {
	date := c.Query("date")

	res, err := h.menuService.GetMenusByDate(c.Context(), date)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetMenus, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *menuHandler) CreateMenu(c *fiber.Ctx) error {
	req := new(domain.CreateMenuRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMenu, err)
	}

	res, err := h.menuService.CreateMenu(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMenu)
}

func (h *menuHandler) CreateMeal(c *fiber.Ctx) error {
	req := new(domain.CreateMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMeal, err)
	}

	res, err := h.menuService.CreateMeal(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMeal)
}

func (h *menuHandler) UploadMealImage(c *fiber.Ctx) error {
	req := new(domain.UploadMealImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadMealImage, err)
	}

	if err := h.menuService.UploadMealImage(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUploadMealImage, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUploadMealImg)
}
