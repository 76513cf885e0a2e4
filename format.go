package docnav

import (
	"fmt"
	"strconv"
	"strings"
)

// OutputFormat selects how a header list is printed.
type OutputFormat string

// Supported output formats.
const (
	// FormatList prints a nested Markdown bullet list.
	FormatList OutputFormat = "list"
	// FormatHeadings prints Markdown "#" headers.
	FormatHeadings OutputFormat = "headers"
	// FormatCFile prints "path:line:description" for editor quickfix lists.
	FormatCFile OutputFormat = "cfile"
)

// OutputFormats lists the supported formats in display order.
var OutputFormats = []OutputFormat{FormatList, FormatHeadings, FormatCFile}

// ParseOutputFormat converts a format name (case-insensitive).
func ParseOutputFormat(name string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FormatList, FormatHeadings, FormatCFile:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (must be list, headers, or cfile)", ErrUnknownFormat, name)
	}
}

// FormatHeaders renders headers one per line, joined with "\n" and without
// a trailing newline. sourcePath is only used by FormatCFile.
func FormatHeaders(headers []Header, format OutputFormat, sourcePath string) (string, error) {
	format, err := ParseOutputFormat(string(format))
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(headers))
	for _, h := range headers {
		switch format {
		case FormatList:
			lines = append(lines, strings.Repeat("  ", h.Level()-1)+"- "+h.Description())
		case FormatHeadings:
			lines = append(lines, strings.Repeat("#", h.Level())+" "+h.Description())
		case FormatCFile:
			lines = append(lines, sourcePath+":"+strconv.Itoa(h.Line())+":"+h.Description())
		}
	}
	return strings.Join(lines, "\n"), nil
}
