package model

// PageStatus represents the classification of the page URL the app was
// pointed at. It starts Unknown and flips to Valid or Invalid exactly once
// per activation.
type PageStatus string

const (
	// PageStatusUnknown means the URL has not been inspected yet
	PageStatusUnknown PageStatus = "Unknown"

	// PageStatusValid means the URL names a story (or story part) page
	PageStatusValid PageStatus = "Valid"

	// PageStatusInvalid means the URL is not a recognized story page
	PageStatusInvalid PageStatus = "Invalid"
)

// String returns the string representation of PageStatus
func (ps PageStatus) String() string {
	return string(ps)
}

// IsResolved returns true once classification has produced a final answer
func (ps PageStatus) IsResolved() bool {
	return ps == PageStatusValid || ps == PageStatusInvalid
}

// DownloadStatus represents the state of the single download slot
type DownloadStatus string

const (
	// DownloadStatusIdle means no download is running; initial and terminal
	DownloadStatusIdle DownloadStatus = "Idle"

	// DownloadStatusInProgress means one conversion request is in flight
	DownloadStatusInProgress DownloadStatus = "InProgress"
)

// String returns the string representation of DownloadStatus
func (ds DownloadStatus) String() string {
	return string(ds)
}

// IsBusy returns true while a download request is in flight
func (ds DownloadStatus) IsBusy() bool {
	return ds == DownloadStatusInProgress
}
