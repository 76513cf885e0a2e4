// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os/exec"
	"strings"
)

// LookPath reports whether an executable is on PATH. Replaceable in tests.
var LookPath = func(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// ForStructure returns the hint for a malformed outline.
func ForStructure() string {
	return format("run 'docnav headers --no-validate <file>' to inspect the outline")
}

// ForNotFound returns hints for a navigation target that does not exist.
func ForNotFound() string {
	return format("titles match exactly at the given --level; run 'docnav headers' to list candidates")
}

// ForFormatter returns hints when an external formatter fails to start.
// Suggests an install command when the tool is missing from PATH.
func ForFormatter(name string) string {
	if name == "" || LookPath(name) {
		return ""
	}
	switch name {
	case "prettier":
		return format("prettier not found on PATH; install with 'npm install -g prettier' or use --formatter none")
	case "pandoc":
		return format("pandoc not found on PATH; see https://pandoc.org/installing.html or use --formatter none")
	default:
		return format(name + " not found on PATH")
	}
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-docnav/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-docnav") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForDialect returns hints when the dialect cannot be inferred.
func ForDialect() string {
	return formatHints([]string{
		"pass --dialect markdown|latex|slide",
		"or set DOCNAV_DIALECT",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
