package main

import (
	"errors"
	"os"

	docnav "github.com/alnah/go-docnav"
	"github.com/alnah/go-docnav/internal/config"
	"github.com/alnah/go-docnav/internal/highlight"
)

// Exit codes for the docnav CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Success
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or arguments
	ExitIO        = 3 // File not found, permission denied
	ExitStructure = 4 // Malformed outline or missing navigation target
	ExitFormatter = 5 // External formatter failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, docnav.ErrStructure) ||
		errors.Is(err, docnav.ErrNotFound) {
		return ExitStructure
	}

	if errors.Is(err, docnav.ErrFormatterFailed) {
		return ExitFormatter
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrMissingTitle) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, docnav.ErrUnknownDialect) ||
		errors.Is(err, docnav.ErrUnknownFormat) ||
		errors.Is(err, docnav.ErrUnknownFormatter) ||
		errors.Is(err, docnav.ErrInvalidLevel) ||
		errors.Is(err, highlight.ErrInvalidMode) {
		return ExitUsage
	}

	return ExitGeneral
}
