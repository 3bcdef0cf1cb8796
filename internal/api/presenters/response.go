package presenters

import (
	"Burger-App-Backend/domain"
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type apiError struct {
	status  int
	message string
}

// errorMap is the single place the error taxonomy meets HTTP: every handler
// funnels failures through ErrorResponse instead of repeating the mapping.
var errorMap = map[error]apiError{
	domain.ErrEmailTaken:         {fiber.StatusConflict, "Email already registered"},
	domain.ErrInvalidCode:        {fiber.StatusBadRequest, "Invalid verification code or email"},
	domain.ErrInvalidCredentials: {fiber.StatusUnauthorized, "Invalid credentials"},
	domain.ErrUnverified:         {fiber.StatusForbidden, "Verify email first"},
	domain.ErrUnauthorized:       {fiber.StatusUnauthorized, "Not logged in"},
	domain.ErrForbidden:          {fiber.StatusForbidden, "Admin only"},
	domain.ErrEmptyCart:          {fiber.StatusBadRequest, "Cart empty"},
	domain.ErrMenuItemNotFound:   {fiber.StatusNotFound, "Menu item not found"},
	domain.ErrCartEntryNotFound:  {fiber.StatusNotFound, "Cart entry not found"},
	domain.ErrInvalidPrice:       {fiber.StatusBadRequest, "Price must not be negative"},
	domain.ErrInvalidImageFormat: {fiber.StatusBadRequest, "Invalid image format"},
	domain.ErrParseUUID:          {fiber.StatusBadRequest, "Invalid id"},
}

// ErrorResponse translates a taxonomy error into its status and client
// message. Anything unmapped is logged server-side under the given tag and
// becomes a generic 500 carrying only the tag text.
func ErrorResponse(c *fiber.Ctx, message string, err error) error {
	for sentinel, mapped := range errorMap {
		if errors.Is(err, sentinel) {
			return c.Status(mapped.status).JSON(fiber.Map{"message": mapped.message})
		}
	}

	logger.Error().Err(err).Str("handler", message).Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": message})
}

// BadRequestResponse covers malformed bodies and validation failures.
func BadRequestResponse(c *fiber.Ctx, message string, err error) error {
	logger.Debug().Err(err).Str("handler", message).Msg("bad request")
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": message})
}

// SuccessResponse writes data as-is when no message is given, a bare
// {message} when there is no data, and both otherwise.
func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	if data == nil {
		return c.Status(code).JSON(fiber.Map{"message": message})
	}
	if message == "" {
		return c.Status(code).JSON(data)
	}
	return c.Status(code).JSON(fiber.Map{"message": message, "data": data})
}
