package model

import (
	"strings"
	"time"
)

// StoryPage is the result of classifying a page URL. StoryID is set only
// when Status is Valid.
type StoryPage struct {
	Status  PageStatus
	StoryID string // opaque numeric id, carried as text
	Title   string // story title when known, may be empty
}

// Cookie is one browser cookie forwarded to the conversion backend so it can
// authenticate as the user. Field names match the backend's wire contract.
type Cookie struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Domain string `json:"domain"`
}

// EpubRequest is the conversion request body sent to the backend.
type EpubRequest struct {
	StoryID       int64    `json:"storyId"`
	IsEmbedImages bool     `json:"isEmbedImages"`
	Cookies       []Cookie `json:"cookies"`
}

// DownloadResult describes one finished download.
type DownloadResult struct {
	TaskID     string
	StoryID    string
	Filename   string // final filename, without directory
	OutputPath string // absolute path of the written file
	Size       int64  // file size in bytes
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetDisplayTitle returns the story title when present, falling back to the
// story id.
func (sp *StoryPage) GetDisplayTitle() string {
	if t := strings.TrimSpace(sp.Title); t != "" {
		return t
	}
	if sp.StoryID != "" {
		return "Story " + sp.StoryID
	}
	return ""
}
