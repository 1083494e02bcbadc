package convert

import (
	"fmt"
	"mime"
	"strings"
)

// Filename constants
const (
	EpubExtension = ".epub"

	// FallbackFilenamePattern names the book when neither the backend nor
	// the metadata lookup produced anything usable.
	FallbackFilenamePattern = "story-%s" + EpubExtension
)

// unsafeFilenameChars are stripped from filenames before writing to disk
const unsafeFilenameChars = `/\:*?"<>|`

// ResolveFilename picks the saved filename in priority order: the
// Content-Disposition header, a sanitized story title, then an id-based
// fallback.
func ResolveFilename(disposition, title, storyID string) string {
	if name := FilenameFromDisposition(disposition); name != "" {
		return name
	}
	if name := SafeFileName(title); name != "" {
		return name + EpubExtension
	}
	return fmt.Sprintf(FallbackFilenamePattern, storyID)
}

// FilenameFromDisposition extracts the filename from a Content-Disposition
// header. Both the plain filename="..." form and the RFC 5987
// filename*=UTF-8''... form are supported; the extended form wins when both
// are present. Returns "" when no usable filename is found.
func FilenameFromDisposition(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return SafeFileName(params["filename"])
}

// SafeFileName strips path separators and other characters that are unsafe
// in filenames, so a hostile header cannot escape the downloads directory.
func SafeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || strings.ContainsRune(unsafeFilenameChars, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Trim(b.String(), " .")
}
