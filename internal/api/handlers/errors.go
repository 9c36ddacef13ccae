package handlers

import (
	"SmartMenza-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// statusForError maps the service error taxonomy onto HTTP statuses:
// validation 400, bad credentials 401, forbidden 403, missing 404,
// constraint conflict 409, everything else 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrRoleNotFound),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidMealType),
		errors.Is(err, domain.ErrRatingOutOfRange),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrCredentialsInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrMenuNotFound),
		errors.Is(err, domain.ErrMealNotFound),
		errors.Is(err, domain.ErrGoalNotFound),
		errors.Is(err, domain.ErrRatingNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrFavoriteMealMissing),
		errors.Is(err, domain.ErrRatingMealGone):
		return fiber.StatusNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
