package download

// Package download orchestrates one EPUB download: optional title lookup,
// cookie collection, the conversion request, and writing the received blob
// into the downloads directory. A single download slot guards against
// overlapping requests and always returns to Idle.
