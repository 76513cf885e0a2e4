package docnav

// Notes:
// - FindAncestry: path correctness for every node of a fixture, first-match
//   behaviour for repeated deeper titles, and ErrNotFound.
// - Render/Navigate: exact output strings, including marker handling and
//   the unexpanded target.

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestNavigate - Rendered outlines
// ---------------------------------------------------------------------------

func TestNavigate(t *testing.T) {
	t.Parallel()

	tr := Build(chapterFixture(t))

	tests := []struct {
		name    string
		level   int
		desc    string
		markers Markers
		want    string
	}{
		{
			name:    "deep target",
			level:   3,
			desc:    "Sub 1.1.1",
			markers: DefaultMarkers,
			want: "- Chapter 1\n" +
				"  - Section 1.1\n" +
				"    - **Sub 1.1.1**\n" +
				"  - Section 1.2\n" +
				"- Chapter 2",
		},
		{
			name:    "root target is not expanded",
			level:   1,
			desc:    "Chapter 1",
			markers: DefaultMarkers,
			want:    "- **Chapter 1**\n- Chapter 2",
		},
		{
			name:    "middle target hides its children",
			level:   2,
			desc:    "Section 1.1",
			markers: Markers{Open: "<mark>", Close: "</mark>"},
			want: "- Chapter 1\n" +
				"  - <mark>Section 1.1</mark>\n" +
				"  - Section 1.2\n" +
				"- Chapter 2",
		},
		{
			name:    "empty markers",
			level:   1,
			desc:    "Chapter 2",
			markers: Markers{},
			want:    "- Chapter 1\n- Chapter 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Navigate(tr, tt.level, tt.desc, tt.markers)
			if err != nil {
				t.Fatalf("Navigate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Navigate() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNavigate_NotFound - Missing targets
// ---------------------------------------------------------------------------

func TestNavigate_NotFound(t *testing.T) {
	t.Parallel()

	tr := Build(chapterFixture(t))

	tests := []struct {
		name  string
		level int
		desc  string
	}{
		{"unknown title", 1, "Chapter 9"},
		{"right title wrong level", 2, "Chapter 1"},
		{"case differs", 1, "chapter 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Navigate(tr, tt.level, tt.desc, DefaultMarkers)
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("Navigate() error = %v, want ErrNotFound", err)
			}
			if !strings.Contains(err.Error(), tt.desc) {
				t.Errorf("error %q does not mention %q", err, tt.desc)
			}
		})
	}

	if _, err := FindAncestry(Build(nil), 1, "Anything"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindAncestry(empty) error = %v, want ErrNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// TestFindAncestry_AllNodes - Paths agree with parent links
// ---------------------------------------------------------------------------

func TestFindAncestry_AllNodes(t *testing.T) {
	t.Parallel()

	headers := headersOf(t,
		1, "Intro",
		2, "Goals",
		2, "Scope",
		3, "In scope",
		3, "Out of scope",
		4, "Later",
		2, "Glossary",
		1, "Design",
		2, "Storage",
		3, "Layout",
		1, "Appendix",
	)
	tr := Build(headers)

	for i, h := range headers {
		anc, err := FindAncestry(tr, h.Level(), h.Description())
		if err != nil {
			t.Fatalf("FindAncestry(%v) error = %v", h, err)
		}
		if anc.Target() != NodeID(i) {
			t.Errorf("FindAncestry(%v) target = %d, want %d", h, anc.Target(), i)
		}
		if len(anc) != h.Level() {
			t.Errorf("FindAncestry(%v) length = %d, want %d", h, len(anc), h.Level())
		}
		if tr.Parent(anc[0]) != NoNode {
			t.Errorf("FindAncestry(%v) does not start at a root", h)
		}
		for j := 1; j < len(anc); j++ {
			if tr.Parent(anc[j]) != anc[j-1] {
				t.Errorf("FindAncestry(%v): %d is not the parent of %d", h, anc[j-1], anc[j])
			}
		}
		if !reflect.DeepEqual(anc, tr.PathTo(NodeID(i))) {
			t.Errorf("FindAncestry(%v) = %v, PathTo = %v", h, anc, tr.PathTo(NodeID(i)))
		}
	}
}

// ---------------------------------------------------------------------------
// TestFindAncestry_FirstMatch - Repeated sub-header titles
// ---------------------------------------------------------------------------

func TestFindAncestry_FirstMatch(t *testing.T) {
	t.Parallel()

	tr := Build(headersOf(t,
		1, "Linux",
		2, "Install",
		1, "macOS",
		2, "Install",
	))

	anc, err := FindAncestry(tr, 2, "Install")
	if err != nil {
		t.Fatalf("FindAncestry() error = %v", err)
	}
	if got := anc.Breadcrumb(tr, " > "); got != "Linux > Install" {
		t.Errorf("Breadcrumb() = %q, want %q", got, "Linux > Install")
	}
	if got := anc.Headers(tr); len(got) != 2 || got[1].Line() != 2 {
		t.Errorf("Headers() = %v, want target on line 2", got)
	}
}

// ---------------------------------------------------------------------------
// TestRender - Direct rendering
// ---------------------------------------------------------------------------

func TestRender(t *testing.T) {
	t.Parallel()

	tr := Build(chapterFixture(t))

	t.Run("nil ancestry renders roots", func(t *testing.T) {
		t.Parallel()
		if got := Render(tr, nil, DefaultMarkers); got != "- Chapter 1\n- Chapter 2" {
			t.Errorf("Render(nil) = %q", got)
		}
	})

	t.Run("table of contents", func(t *testing.T) {
		t.Parallel()
		if got := TableOfContents(tr); got != "- Chapter 1\n- Chapter 2" {
			t.Errorf("TableOfContents() = %q", got)
		}
	})

	t.Run("path from PathTo", func(t *testing.T) {
		t.Parallel()
		got := Render(tr, tr.PathTo(NodeID(3)), Markers{Open: "[", Close: "]"})
		want := "- Chapter 1\n  - Section 1.1\n  - [Section 1.2]\n- Chapter 2"
		if got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("no trailing newline", func(t *testing.T) {
		t.Parallel()
		got := Render(tr, tr.PathTo(NodeID(2)), DefaultMarkers)
		if strings.HasSuffix(got, "\n") {
			t.Errorf("Render() has trailing newline: %q", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestAncestry_Target - Empty path
// ---------------------------------------------------------------------------

func TestAncestry_Target(t *testing.T) {
	t.Parallel()

	if got := Ancestry(nil).Target(); got != NoNode {
		t.Errorf("Target() of empty ancestry = %d, want NoNode", got)
	}
}
