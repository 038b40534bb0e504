// Package ioutils provides file system and image utilities for
// doctalk.
//
// This package contains functions for:
//   - File copying and writing
//   - Filename sanitization
//   - Directory creation
//   - Cover art preparation (resize + JPEG normalization)
//
// Functions that accept a context.Context check cancellation before
// starting, though file operations themselves are not interruptible.
package ioutils
