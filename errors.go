package docnav

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	// ErrValidation is returned when a Header cannot be constructed.
	ErrValidation = errors.New("invalid header")

	// ErrStructure is matched by every *StructureError.
	ErrStructure = errors.New("malformed document structure")

	// ErrNotFound is returned when a navigation target is absent from the tree.
	ErrNotFound = errors.New("header not found")

	// Parsing errors for user-supplied selectors.
	ErrUnknownDialect = errors.New("unknown dialect")
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrInvalidLevel   = errors.New("invalid max level")

	// External formatter errors.
	ErrUnknownFormatter = errors.New("unknown formatter")
	ErrFormatterFailed  = errors.New("external formatter failed")
	ErrEmptyContent     = errors.New("content cannot be empty")
)

// StructureKind identifies which structural rule a document violates.
type StructureKind int

const (
	// DuplicateTitle means two level-1 headers share a description.
	DuplicateTitle StructureKind = iota + 1
	// LevelJump means a header is more than one level deeper than its predecessor.
	LevelJump
)

func (k StructureKind) String() string {
	switch k {
	case DuplicateTitle:
		return "duplicate top-level title"
	case LevelJump:
		return "level jump"
	default:
		return "unknown"
	}
}

// StructureError reports a hard violation found by Validate.
// Prev is the earlier offending header (the first occurrence for duplicates),
// Cur the later one at position Index in the validated list.
type StructureError struct {
	Kind  StructureKind
	Index int
	Prev  Header
	Cur   Header
}

func (e *StructureError) Error() string {
	switch e.Kind {
	case DuplicateTitle:
		return fmt.Sprintf("%s: %s %q at lines %d and %d",
			ErrStructure, e.Kind, e.Cur.Description(), e.Prev.Line(), e.Cur.Line())
	case LevelJump:
		return fmt.Sprintf("%s: %s from #%d (level %d, %q, line %d) to #%d (level %d, %q, line %d)",
			ErrStructure, e.Kind,
			e.Index-1, e.Prev.Level(), e.Prev.Description(), e.Prev.Line(),
			e.Index, e.Cur.Level(), e.Cur.Description(), e.Cur.Line())
	default:
		return ErrStructure.Error()
	}
}

// Is reports whether target is ErrStructure.
func (e *StructureError) Is(target error) bool {
	return target == ErrStructure
}
