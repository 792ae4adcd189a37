package platform

// Package platform contains OS integration: standard directories,
// directory creation and revealing downloaded files in the file manager.
