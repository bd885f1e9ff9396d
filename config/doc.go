// Package config owns the SmartType settings file.
//
// Settings live in ~/.config/smarttype/config.yaml, the same file the daemon
// reads. Loading falls back to built-in defaults when the file is missing or
// unreadable; saving normalizes the value and replaces the file atomically so
// the daemon never observes a half-written config.
package config
