package classify

import (
	"context"
	"log"
	"regexp"

	"github.com/wpget/wp-downloader/internal/model"
)

// Classification constants
const (
	// TargetHost is the only host whose pages are downloadable
	TargetHost = "www.wattpad.com"

	// PlaceholderStoryID is used by the development fallback when no page
	// URL is available at all.
	PlaceholderStoryID = "336166598"
)

// URL patterns, most specific first. storyURLPattern matches canonical story
// pages like /story/12345-some-title; partURLPattern matches bare chapter
// pages like /67890 at the domain root.
var (
	storyURLPattern = regexp.MustCompile(`^https?://www\.wattpad\.com/story/(\d+)-`)
	partURLPattern  = regexp.MustCompile(`^https?://www\.wattpad\.com/(\d+)(?:[?#].*)?$`)
)

// GroupResolver resolves a story part id to its parent story id.
type GroupResolver interface {
	StoryGroupID(ctx context.Context, partID string) (string, error)
}

// rule pairs a URL pattern with the handler applied to its capture group.
// Rules are tried top to bottom; the first pattern match decides the result.
type rule struct {
	pattern *regexp.Regexp
	handler func(ctx context.Context, id string) model.StoryPage
}

// Classifier runs one classification pass over a page URL
type Classifier struct {
	rules []rule
}

// NewClassifier creates a classifier backed by the given resolver
func NewClassifier(resolver GroupResolver) *Classifier {
	c := &Classifier{}
	c.rules = []rule{
		{storyURLPattern, func(_ context.Context, id string) model.StoryPage {
			return model.StoryPage{Status: model.PageStatusValid, StoryID: id}
		}},
		{partURLPattern, func(ctx context.Context, id string) model.StoryPage {
			return c.resolvePart(ctx, resolver, id)
		}},
	}
	return c
}

// Classify inspects a page URL and returns its classification. It is meant
// to run exactly once per activation; callers do not re-trigger it on later
// URL changes.
func (c *Classifier) Classify(ctx context.Context, pageURL string) model.StoryPage {
	for _, r := range c.rules {
		if m := r.pattern.FindStringSubmatch(pageURL); m != nil {
			return r.handler(ctx, m[1])
		}
	}
	return model.StoryPage{Status: model.PageStatusInvalid}
}

// Placeholder returns the development fallback page used when no URL is
// available (e.g. running outside a real session).
func (c *Classifier) Placeholder() model.StoryPage {
	return model.StoryPage{Status: model.PageStatusValid, StoryID: PlaceholderStoryID}
}

// resolvePart maps a chapter id to its parent story. Any failure makes the
// page Invalid; there is no retry.
func (c *Classifier) resolvePart(ctx context.Context, resolver GroupResolver, partID string) model.StoryPage {
	if resolver == nil {
		return model.StoryPage{Status: model.PageStatusInvalid}
	}
	groupID, err := resolver.StoryGroupID(ctx, partID)
	if err != nil {
		log.Printf("Chapter %s lookup failed: %v", partID, err)
		return model.StoryPage{Status: model.PageStatusInvalid}
	}
	return model.StoryPage{Status: model.PageStatusValid, StoryID: groupID}
}
