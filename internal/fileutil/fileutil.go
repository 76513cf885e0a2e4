// Package fileutil provides file and line I/O helpers.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrNotRegularFile         = errors.New("not a regular file")
)

// filePermissions is used for files written by WriteFileAtomic when the target
// does not exist yet.
const filePermissions = 0o644

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", "docnav-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// SplitLines splits text into lines, normalizing \r\n and \r to \n.
// A single trailing newline does not produce an empty last line, and empty
// text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = crlfOrCR.ReplaceAllString(text, "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// JoinLines is the inverse of SplitLines: lines joined by "\n" with a
// trailing newline, or "" for no lines.
func JoinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// LineStyle records how a text ends its lines, so edited lines can be
// written back without touching the rest of the file.
type LineStyle struct {
	Newline      string // "\n" or "\r\n"
	FinalNewline bool
}

// DetectLineStyle reports the line ending of text: CRLF when any CRLF is
// present, LF otherwise. Empty text gets the JoinLines style.
func DetectLineStyle(text string) LineStyle {
	style := LineStyle{Newline: "\n", FinalNewline: true}
	if text == "" {
		return style
	}
	if strings.Contains(text, "\r\n") {
		style.Newline = "\r\n"
	}
	style.FinalNewline = strings.HasSuffix(text, "\n") || strings.HasSuffix(text, "\r")
	return style
}

// Join joins lines with the style's newline, adding a trailing one only
// when the style has a final newline.
func (ls LineStyle) Join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	text := strings.Join(lines, ls.Newline)
	if ls.FinalNewline {
		text += ls.Newline
	}
	return text
}

// WriteFileAtomic writes content to path through a temp file in the same
// directory and a rename, so readers never observe a partial file. An
// existing file keeps its permissions.
func WriteFileAtomic(path, content string) error {
	perm := os.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %s", ErrNotRegularFile, path)
		}
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".docnav-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "docnav" -> false (name)
//   - "./docnav.yaml" -> true (relative path)
//   - "/etc/docnav.yaml" -> true (absolute)
//   - "C:\docnav.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
