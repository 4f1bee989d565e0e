package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessOcrHealth  = "OCR service is running"
	MessageSuccessOcrProcess = "receipt processed successfully"

	MessageFailedOcrProcess = "failed to process receipt image"

	ErrOcrImageRequired = fmt.Errorf("%w: image file is required", ErrValidation)
	ErrOcrImageTooLarge = fmt.Errorf("%w: image file is too large", ErrValidation)
	ErrScanNotFound     = fmt.Errorf("%w: scan not found", ErrNotFound)
)

const DefaultOcrRestaurantName = "unknown restaurant"

type OcrFailure string

const (
	OcrProcessMissing OcrFailure = "process_missing"
	OcrTimeout        OcrFailure = "timeout"
	OcrNonZeroExit    OcrFailure = "non_zero_exit"
	OcrResultMissing  OcrFailure = "result_missing"
	OcrResultInvalid  OcrFailure = "result_invalid"
	OcrWorkspace      OcrFailure = "workspace"
)

// OcrError describes a failed run of the external OCR process.
type OcrError struct {
	Kind     OcrFailure
	ExitCode int
	Output   string
	Err      error
}

func (e *OcrError) Error() string {
	switch e.Kind {
	case OcrProcessMissing:
		return fmt.Sprintf("ocr process not found: %v", e.Err)
	case OcrTimeout:
		return "ocr process timed out"
	case OcrNonZeroExit:
		return fmt.Sprintf("ocr process exited with code %d", e.ExitCode)
	case OcrResultMissing:
		return "ocr result file not found"
	case OcrResultInvalid:
		return fmt.Sprintf("ocr result file could not be parsed: %v", e.Err)
	default:
		return fmt.Sprintf("ocr workspace error: %v", e.Err)
	}
}

func (e *OcrError) Unwrap() error {
	return e.Err
}

type (
	OcrMenuItem struct {
		Name  string `json:"name"`
		Price int    `json:"price"`
	}

	OcrProcessResponse struct {
		ScanID         string        `json:"scan_id"`
		Text           string        `json:"text"`
		RestaurantName string        `json:"restaurant_name"`
		Address        string        `json:"address"`
		Items          []OcrMenuItem `json:"items"`
		Total          int           `json:"total"`
	}

	OcrHealthResponse struct {
		Status    string    `json:"status"`
		Message   string    `json:"message"`
		Timestamp time.Time `json:"timestamp"`
	}

	OcrErrorResponse struct {
		Error    string `json:"error"`
		Details  string `json:"details"`
		ExitCode *int   `json:"exit_code,omitempty"`
		Output   string `json:"output,omitempty"`
	}
)
