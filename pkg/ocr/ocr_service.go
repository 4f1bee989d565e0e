package ocr

import (
	"Yoriview-Backend/domain"
	"context"
	"errors"
	"fmt"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	inputDir    = "input"
	outputDir   = "output"
	inputName   = "receipt"
	resultFile  = "receipt_result.json"
	defaultExt  = "jpg"
	maxExtLen   = 5
	killGrace   = 2 * time.Second
	defaultIdle = time.Hour

	defaultTimeout = 30 * time.Second
)

type (
	Image struct {
		Filename string
		Data     []byte
	}

	// Extractor turns a receipt image into structured fields.
	Extractor interface {
		Extract(ctx context.Context, image Image) (domain.OcrProcessResponse, error)
	}

	// OcrService extracts receipts with an external script and keeps each
	// uploaded image staged under its scan id until a review consumes it.
	OcrService interface {
		Extractor
		StagedImage(scanID string) ([]byte, error)
		RemoveScan(scanID string) error
	}

	Config struct {
		Python        string
		Script        string
		Timeout       time.Duration
		WorkDir       string
		MaxConcurrent int64
		StaleAfter    time.Duration
	}

	scriptService struct {
		config Config
		sem    *semaphore.Weighted
		now    func() time.Time
	}
)

func NewOcrService(config Config) OcrService {
	if config.WorkDir == "" {
		config.WorkDir = filepath.Join(os.TempDir(), "yoriview-ocr")
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.MaxConcurrent <= 0 {
		config.MaxConcurrent = 1
	}
	if config.StaleAfter <= 0 {
		config.StaleAfter = defaultIdle
	}
	return &scriptService{
		config: config,
		sem:    semaphore.NewWeighted(config.MaxConcurrent),
		now:    time.Now,
	}
}

// Extract runs the script in a fresh scan directory. The wait for a free
// slot and the run itself share the configured timeout.
func (s *scriptService) Extract(ctx context.Context, image Image) (domain.OcrProcessResponse, error) {
	if len(image.Data) == 0 {
		return domain.OcrProcessResponse{}, domain.ErrOcrImageRequired
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return domain.OcrProcessResponse{}, &domain.OcrError{Kind: domain.OcrTimeout, Err: err}
	}
	defer s.sem.Release(1)

	s.pruneStale()

	scanID := uuid.NewString()
	dir := s.scanDir(scanID)
	res, err := s.run(ctx, dir, image)
	if err != nil {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			log.Warnf("failed to remove ocr scan dir %s: %v", dir, rmErr)
		}
		return domain.OcrProcessResponse{}, err
	}

	res.ScanID = scanID
	return res, nil
}

func (s *scriptService) run(ctx context.Context, dir string, image Image) (domain.OcrProcessResponse, error) {
	python, script, err := s.resolveCommand()
	if err != nil {
		return domain.OcrProcessResponse{}, err
	}

	for _, sub := range []string{inputDir, outputDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o750); err != nil {
			return domain.OcrProcessResponse{}, &domain.OcrError{Kind: domain.OcrWorkspace, Err: err}
		}
	}
	imagePath := filepath.Join(dir, inputDir, inputName+"."+imageExtension(image))
	if err := os.WriteFile(imagePath, image.Data, 0o640); err != nil {
		return domain.OcrProcessResponse{}, &domain.OcrError{Kind: domain.OcrWorkspace, Err: err}
	}

	cmd := exec.CommandContext(ctx, python, script)
	cmd.Dir = dir
	cmd.WaitDelay = killGrace
	out, err := cmd.CombinedOutput()
	output := string(out)

	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		return domain.OcrProcessResponse{}, &domain.OcrError{Kind: domain.OcrTimeout, Output: output, Err: ctxErr}
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return domain.OcrProcessResponse{}, &domain.OcrError{
				Kind:     domain.OcrNonZeroExit,
				ExitCode: exitErr.ExitCode(),
				Output:   output,
				Err:      err,
			}
		}
		return domain.OcrProcessResponse{}, &domain.OcrError{Kind: domain.OcrProcessMissing, Output: output, Err: err}
	}

	raw, err := os.ReadFile(filepath.Join(dir, outputDir, resultFile))
	if err != nil {
		return domain.OcrProcessResponse{}, &domain.OcrError{Kind: domain.OcrResultMissing, Output: output, Err: err}
	}
	res, err := parseResult(raw)
	if err != nil {
		return domain.OcrProcessResponse{}, &domain.OcrError{Kind: domain.OcrResultInvalid, Output: output, Err: err}
	}
	res.Text = output

	// only the input image stays staged
	if err := os.RemoveAll(filepath.Join(dir, outputDir)); err != nil {
		log.Warnf("failed to remove ocr output dir in %s: %v", dir, err)
	}
	return res, nil
}

func (s *scriptService) resolveCommand() (string, string, error) {
	python, err := exec.LookPath(s.config.Python)
	if err != nil {
		return "", "", &domain.OcrError{Kind: domain.OcrProcessMissing, Err: err}
	}
	script, err := filepath.Abs(s.config.Script)
	if err != nil {
		return "", "", &domain.OcrError{Kind: domain.OcrProcessMissing, Err: err}
	}
	if _, err := os.Stat(script); err != nil {
		return "", "", &domain.OcrError{Kind: domain.OcrProcessMissing, Err: err}
	}
	return python, script, nil
}

func (s *scriptService) StagedImage(scanID string) ([]byte, error) {
	if _, err := uuid.Parse(scanID); err != nil {
		return nil, domain.ErrScanNotFound
	}
	matches, err := filepath.Glob(filepath.Join(s.scanDir(scanID), inputDir, inputName+".*"))
	if err != nil || len(matches) == 0 {
		return nil, domain.ErrScanNotFound
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrScanNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *scriptService) RemoveScan(scanID string) error {
	if _, err := uuid.Parse(scanID); err != nil {
		return fmt.Errorf("invalid scan id %q", scanID)
	}
	return os.RemoveAll(s.scanDir(scanID))
}

func (s *scriptService) scanDir(scanID string) string {
	return filepath.Join(s.config.WorkDir, scanID)
}

// pruneStale removes scans that were never turned into a review.
func (s *scriptService) pruneStale() {
	entries, err := os.ReadDir(s.config.WorkDir)
	if err != nil {
		return
	}
	cutoff := s.now().Add(-s.config.StaleAfter)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := uuid.Parse(entry.Name()); err != nil {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(s.config.WorkDir, entry.Name())); err != nil {
			log.Warnf("failed to prune stale ocr scan %s: %v", entry.Name(), err)
		}
	}
}

// imageExtension prefers the uploaded file's extension, then the sniffed
// image type, then jpg.
func imageExtension(image Image) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(image.Filename), "."))
	if ext == "" {
		if mt := mimetype.Detect(image.Data); strings.HasPrefix(mt.String(), "image/") {
			ext = strings.TrimPrefix(mt.Extension(), ".")
		}
	}
	if ext == "" || len(ext) > maxExtLen || strings.IndexFunc(ext, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	}) >= 0 {
		return defaultExt
	}
	return ext
}
