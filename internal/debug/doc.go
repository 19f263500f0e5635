// Package debug provides the process-wide structured logger.
//
// Logging is a no-op until Init or InitFromEnv is called. When the
// BOXLAYOUT_DEBUG environment variable is set to a file path, InitFromEnv
// appends debug-level JSON records to that file, rotated by size.
package debug
