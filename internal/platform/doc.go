package platform

// Package platform contains OS-specific glue: standard directory lookup,
// Firefox profile discovery, and revealing finished files in the system
// file manager.
