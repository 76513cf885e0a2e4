package main

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	docnav "github.com/alnah/go-docnav"
	"github.com/alnah/go-docnav/internal/yamlutil"
)

// toolInfo describes one external formatter.
type toolInfo struct {
	Name  string
	Path  string
	Found bool
}

// doctorResult holds everything the doctor command reports.
type doctorResult struct {
	Version    string
	GoVersion  string
	GOMAXPROCS int
	Workers    int
	Dialects   []docnav.Dialect
	Formats    []docnav.OutputFormat
	Tools      []toolInfo
	Unknown    []string // unrecognized DOCNAV_* variables
	Config     string   // effective configuration as YAML
}

// lookPath locates executables. Replaceable in tests.
var lookPath = exec.LookPath

// runDoctor collects diagnostics about the runtime and external tools.
func runDoctor(s *settings, env *Environment) *doctorResult {
	result := &doctorResult{
		Version:    Version,
		GoVersion:  runtime.Version(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Workers:    resolveWorkers(s.workers, maxWorkers),
		Dialects:   docnav.Dialects,
		Formats:    docnav.OutputFormats,
	}

	for _, name := range docnav.FormatterNames {
		if name == docnav.FormatterNone {
			continue
		}
		info := toolInfo{Name: name}
		if p, err := lookPath(name); err == nil {
			info.Path, info.Found = p, true
		}
		result.Tools = append(result.Tools, info)
	}

	var unknown strings.Builder
	warnUnknownEnvVars(&unknown, env.Environ())
	for _, line := range strings.Split(strings.TrimSpace(unknown.String()), "\n") {
		if line != "" {
			result.Unknown = append(result.Unknown, line)
		}
	}

	if s.cfg != nil {
		out, err := yamlutil.Marshal(s.cfg)
		if err != nil {
			result.Config = fmt.Sprintf("# %v\n", err)
		} else {
			result.Config = string(out)
		}
	}

	return result
}

// printDoctorResult writes the doctor report.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintf(w, "docnav %s (%s)\n", r.Version, r.GoVersion)
	fmt.Fprintf(w, "GOMAXPROCS: %d, workers: %d\n", r.GOMAXPROCS, r.Workers)
	if len(r.Dialects) > 0 {
		fmt.Fprintf(w, "Dialects: %s\n", joinNames(r.Dialects))
	}
	if len(r.Formats) > 0 {
		fmt.Fprintf(w, "Output formats: %s\n", joinNames(r.Formats))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Formatters:")
	for _, t := range r.Tools {
		if t.Found {
			fmt.Fprintf(w, "  [ok]      %-9s %s\n", t.Name, t.Path)
		} else {
			fmt.Fprintf(w, "  [missing] %-9s not found on PATH\n", t.Name)
		}
	}
	if r.Config != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Effective configuration:")
		fmt.Fprint(w, r.Config)
	}
	if len(r.Unknown) > 0 {
		fmt.Fprintln(w)
		for _, u := range r.Unknown {
			fmt.Fprintln(w, u)
		}
	}
}

// joinNames joins string-typed enum values with ", ".
func joinNames[T ~string](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
