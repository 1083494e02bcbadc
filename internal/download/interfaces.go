package download

import (
	"context"

	"github.com/wpget/wp-downloader/internal/convert"
	"github.com/wpget/wp-downloader/internal/model"
)

// TitleFetcher looks up a story title for filename construction. Failures
// are non-fatal to the download.
type TitleFetcher interface {
	StoryTitle(ctx context.Context, storyID string) (string, error)
}

// Converter requests the EPUB from the conversion backend.
type Converter interface {
	Generate(ctx context.Context, req model.EpubRequest, title string) (*convert.Result, error)
}

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(model.DownloadStatus))
	Status() model.DownloadStatus
	Start(ctx context.Context, storyID string, embedImages bool) (*model.DownloadResult, error)
}
