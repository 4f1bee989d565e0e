package presenters

import (
	"Yoriview-Backend/domain"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	Response struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    any    `json:"data,omitempty"`
		Error   string `json:"error,omitempty"`
	}
)

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse hides the cause of server errors from the client and logs it instead.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if statusCode >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
		res.Error = domain.MessageFailedProcessRequest
	} else if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

// StatusFromError maps the domain error kinds onto HTTP status codes.
func StatusFromError(err error) int {
	var ocrErr *domain.OcrError
	switch {
	case errors.As(err, &ocrErr):
		return fiber.StatusInternalServerError
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// OcrErrorResponse reports an external OCR failure with its diagnostics.
func OcrErrorResponse(c *fiber.Ctx, err error) error {
	var ocrErr *domain.OcrError
	if !errors.As(err, &ocrErr) {
		return ErrorResponse(c, StatusFromError(err), domain.MessageFailedOcrProcess, err)
	}
	log.Errorf("%s %s: ocr failure (%s): %v", c.Method(), c.Path(), ocrErr.Kind, err)

	res := domain.OcrErrorResponse{
		Error:   domain.MessageFailedOcrProcess,
		Details: ocrErr.Error(),
		Output:  ocrErr.Output,
	}
	if ocrErr.Kind == domain.OcrNonZeroExit {
		code := ocrErr.ExitCode
		res.ExitCode = &code
	}
	return c.Status(fiber.StatusInternalServerError).JSON(res)
}
