package ui

// Package ui implements the application window: the loading / invalid /
// ready views driven by page classification, the download action, and the
// settings dialog.
