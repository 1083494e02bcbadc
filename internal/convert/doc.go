package convert

// Package convert is the client for the EPUB conversion backend. It posts a
// story id (with the user's cookies) and receives the generated book as a
// binary blob, resolving the final filename from the response headers, a
// known story title, or an id-based fallback.
