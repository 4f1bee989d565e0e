package handlers

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/internal/api/presenters"
	"Yoriview-Backend/pkg/ocr"
	"github.com/gofiber/fiber/v2"
	"io"
	"time"
)

type (
	OcrHandler interface {
		Health(c *fiber.Ctx) error
		ProcessReceipt(c *fiber.Ctx) error
	}

	ocrHandler struct {
		extractor    ocr.Extractor
		maxImageSize int64
	}
)

func NewOcrHandler(extractor ocr.Extractor, maxImageSize int64) OcrHandler {
	return &ocrHandler{
		extractor:    extractor,
		maxImageSize: maxImageSize,
	}
}

func (h *ocrHandler) Health(c *fiber.Ctx) error {
	return c.JSON(domain.OcrHealthResponse{
		Status:    "OK",
		Message:   domain.MessageSuccessOcrHealth,
		Timestamp: time.Now(),
	})
}

// ProcessReceipt expects the receipt photo in the multipart field "image".
func (h *ocrHandler) ProcessReceipt(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader.Size == 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedOcrProcess, domain.ErrOcrImageRequired)
	}
	if h.maxImageSize > 0 && fileHeader.Size > h.maxImageSize {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedOcrProcess, domain.ErrOcrImageTooLarge)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedOcrProcess, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedOcrProcess, err)
	}

	res, err := h.extractor.Extract(c.Context(), ocr.Image{Filename: fileHeader.Filename, Data: data})
	if err != nil {
		return presenters.OcrErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}
