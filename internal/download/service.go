package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wpget/wp-downloader/internal/cookies"
	"github.com/wpget/wp-downloader/internal/model"
	"github.com/wpget/wp-downloader/internal/platform"
)

// TargetDomain scopes cookie collection for the conversion backend
const TargetDomain = "wattpad.com"

// File permissions for written books
const DefaultFilePermissions = 0644

// ErrDownloadInProgress is returned when Start is called while the single
// download slot is busy. Callers treat it as a no-op.
var ErrDownloadInProgress = errors.New("a download is already in progress")

// Service handles download orchestration
type Service struct {
	mu          sync.Mutex
	status      model.DownloadStatus
	downloadDir string
	converter   Converter
	titles      TitleFetcher   // optional, nil disables title lookup
	cookieSrc   cookies.Source // optional, nil means anonymous download
	onUpdate    func(model.DownloadStatus)
}

// NewService creates a download service writing into downloadDir
func NewService(downloadDir string, converter Converter) *Service {
	return &Service{
		status:      model.DownloadStatusIdle,
		downloadDir: downloadDir,
		converter:   converter,
	}
}

// SetTitleFetcher enables story title lookup for nicer filenames
func (s *Service) SetTitleFetcher(titles TitleFetcher) {
	s.titles = titles
}

// SetCookieSource enables forwarding browser cookies to the backend
func (s *Service) SetCookieSource(src cookies.Source) {
	s.cookieSrc = src
}

// SetUpdateCallback sets the callback invoked on status transitions
func (s *Service) SetUpdateCallback(callback func(model.DownloadStatus)) {
	s.onUpdate = callback
}

// Status returns the current download status
func (s *Service) Status() model.DownloadStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Start runs one download to completion. It returns ErrDownloadInProgress
// when the slot is busy, and the status is guaranteed to be Idle again when
// it returns, whatever the outcome.
func (s *Service) Start(ctx context.Context, storyID string, embedImages bool) (*model.DownloadResult, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	taskID := generateTaskID()
	startedAt := time.Now()
	log.Printf("Task %s: downloading story %s (embed images: %v)", taskID, storyID, embedImages)

	numericID, err := strconv.ParseInt(storyID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid story id %q: %w", storyID, err)
	}

	// Title lookup is best-effort; the filename falls back to the id
	var title string
	if s.titles != nil {
		title, err = s.titles.StoryTitle(ctx, storyID)
		if err != nil {
			log.Printf("Task %s: title lookup failed, using id-based name: %v", taskID, err)
			title = ""
		}
	}

	// Cookie collection is best-effort too: without cookies the backend
	// still serves public stories.
	var cookieList []model.Cookie
	if s.cookieSrc != nil {
		cookieList, err = s.cookieSrc.CookiesForDomain(TargetDomain)
		if err != nil {
			log.Printf("Task %s: cookie collection failed, downloading anonymously: %v", taskID, err)
			cookieList = nil
		}
	}

	result, err := s.converter.Generate(ctx, model.EpubRequest{
		StoryID:       numericID,
		IsEmbedImages: embedImages,
		Cookies:       cookieList,
	}, title)
	if err != nil {
		return nil, err
	}

	if err := platform.CreateDirectoryIfNotExists(s.downloadDir); err != nil {
		return nil, fmt.Errorf("failed to create downloads directory: %w", err)
	}

	outputPath := filepath.Join(s.downloadDir, result.Filename)
	if err := os.WriteFile(outputPath, result.Data, DefaultFilePermissions); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	log.Printf("Task %s: saved %s (%d bytes)", taskID, outputPath, len(result.Data))
	return &model.DownloadResult{
		TaskID:     taskID,
		StoryID:    storyID,
		Filename:   result.Filename,
		OutputPath: outputPath,
		Size:       int64(len(result.Data)),
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
	}, nil
}

// acquire takes the single download slot
func (s *Service) acquire() error {
	s.mu.Lock()
	if s.status.IsBusy() {
		s.mu.Unlock()
		return ErrDownloadInProgress
	}
	s.status = model.DownloadStatusInProgress
	s.mu.Unlock()

	s.notifyUpdate(model.DownloadStatusInProgress)
	return nil
}

// release frees the slot; deferred so every exit path resets to Idle
func (s *Service) release() {
	s.mu.Lock()
	s.status = model.DownloadStatusIdle
	s.mu.Unlock()

	s.notifyUpdate(model.DownloadStatusIdle)
}

// notifyUpdate calls the update callback if set. Runs outside the lock so
// callbacks may query the service.
func (s *Service) notifyUpdate(status model.DownloadStatus) {
	if s.onUpdate != nil {
		s.onUpdate(status)
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("task-%d", time.Now().UnixNano())
	}
	return id.String()
}
