package wattpad

// Package wattpad implements a read-only client for the public Wattpad
// metadata API: resolving a story part (chapter) to its parent story id, and
// fetching a story's title for filename construction.
