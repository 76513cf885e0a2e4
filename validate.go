package docnav

import (
	"fmt"
	"io"
)

// Validate checks the structural rules a header list must satisfy before a
// tree is built from it:
//
//   - the first header should be level 1 (a warning is written to warn,
//     which may be nil, but validation continues);
//   - level-1 descriptions must be unique;
//   - a header may be at most one level deeper than its predecessor.
//     Decreases of any size are allowed.
//
// Hard violations are returned as *StructureError. headers is not modified.
func Validate(headers []Header, warn io.Writer) error {
	if len(headers) == 0 {
		return nil
	}

	if first := headers[0]; first.Level() != 1 && warn != nil {
		fmt.Fprintf(warn, "warning: first header %q (line %d) is level %d, expected 1\n",
			first.Description(), first.Line(), first.Level())
	}

	seen := make(map[string]Header)
	for i, h := range headers {
		if h.Level() != 1 {
			continue
		}
		if prev, ok := seen[h.Description()]; ok {
			return &StructureError{Kind: DuplicateTitle, Index: i, Prev: prev, Cur: h}
		}
		seen[h.Description()] = h
	}

	for i := 1; i < len(headers); i++ {
		prev, cur := headers[i-1], headers[i]
		if cur.Level()-prev.Level() > 1 {
			return &StructureError{Kind: LevelJump, Index: i, Prev: prev, Cur: cur}
		}
	}

	return nil
}
