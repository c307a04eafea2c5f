package platform

// Package platform contains OS/platform integration: filesystem helpers,
// config file locations, and OS open/reveal of folders.
