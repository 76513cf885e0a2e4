// Package docnav extracts the header outline of Markdown, LaTeX, and slide
// documents and renders "where am I" navigation from it.
//
// # Quick Start
//
// Extract, validate, and navigate:
//
//	outline, err := docnav.ParseOutline(lines, docnav.ParseOptions{
//	    Dialect:  docnav.Markdown,
//	    MaxLevel: 3,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := outline.Validate(os.Stderr); err != nil {
//	    log.Fatal(err) // *docnav.StructureError
//	}
//	nav, err := outline.Navigate(2, "Installation", docnav.DefaultMarkers)
//
// # Pipeline
//
// Each stage is a pure function over in-memory values:
//
//  1. Extract scans lines with a dialect Classifier into a flat []Header,
//     skipping decorative separators ("#####", "%% =====").
//  2. Validate checks the flat list: unique top-level titles and no level
//     increase greater than one.
//  3. Build derives a Tree (an arena of nodes addressed by NodeID).
//  4. FindAncestry and Render produce the navigation outline, expanding only
//     the path to the selected header.
//
// # Dialects
//
// Markdown headers ("## Title"), LaTeX sectioning commands
// ("\subsection{Title}", comments skipped), and slide markers ("* Title",
// always level 1) share the same pipeline. ExtractMarkdownAST is a
// CommonMark-aware alternative for Markdown built on goldmark.
//
// # Output
//
// FormatHeaders prints a header list as a nested list, as "#" headers, or
// in the "path:line:title" quickfix format understood by editors. Annotate
// inserts a navigation block after each header, for in-slide breadcrumbs.
//
// All functions are safe for concurrent use on distinct inputs.
package docnav
