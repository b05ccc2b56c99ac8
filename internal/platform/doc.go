package platform

// Package platform contains OS integration: the user's default directories,
// writing preview images to disk, and revealing saved files in the system
// file manager.
