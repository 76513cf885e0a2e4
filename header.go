package docnav

import "fmt"

// Header is a structural header found in a document: a Markdown "#" header,
// a LaTeX sectioning command, or a slide marker.
//
// Header values are immutable once created. Trees built from a header list
// keep their own copies, so the flat list can be retained unchanged.
type Header struct {
	level       int
	description string
	line        int
}

// NewHeader creates a Header. Level and line are 1-based; description must
// be non-empty. Any violation returns an error wrapping ErrValidation.
func NewHeader(level int, description string, line int) (Header, error) {
	if level < 1 {
		return Header{}, fmt.Errorf("%w: level %d must be >= 1", ErrValidation, level)
	}
	if description == "" {
		return Header{}, fmt.Errorf("%w: description cannot be empty (line %d)", ErrValidation, line)
	}
	if line < 1 {
		return Header{}, fmt.Errorf("%w: line number %d must be >= 1", ErrValidation, line)
	}
	return Header{level: level, description: description, line: line}, nil
}

// MustHeader is like NewHeader but panics on invalid input.
// Intended for tests and package-level fixtures.
func MustHeader(level int, description string, line int) Header {
	h, err := NewHeader(level, description, line)
	if err != nil {
		panic(err)
	}
	return h
}

// Level returns the nesting depth, 1 being the top level.
func (h Header) Level() int { return h.level }

// Description returns the visible title text.
func (h Header) Description() string { return h.description }

// Line returns the 1-based source line number.
func (h Header) Line() int { return h.line }

// IsZero reports whether h is the zero Header (never produced by NewHeader).
func (h Header) IsZero() bool { return h.level == 0 }

// Matches reports whether h has the given level and description.
// This is the key used by navigation lookups.
func (h Header) Matches(level int, description string) bool {
	return h.level == level && h.description == description
}

// String renders the header for debugging, e.g. "L2:14:Installation".
func (h Header) String() string {
	return fmt.Sprintf("L%d:%d:%s", h.level, h.line, h.description)
}
