package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	workers int
}

// inputFlags control header extraction.
type inputFlags struct {
	dialect    string
	maxLevel   int
	ast        bool
	noValidate bool
}

// outputFlags control how results are printed.
type outputFlags struct {
	format string
	color  string
	style  string
}

// navFlags select the header to navigate to and how it is emphasized.
type navFlags struct {
	level int
	title string
	open  string
	close string
}

// annotateFlags control navigation block insertion.
type annotateFlags struct {
	depth     int
	formatter string
	inPlace   bool
}

// cliFlags holds every flag; each command registers the groups it uses.
type cliFlags struct {
	common   commonFlags
	input    inputFlags
	output   outputFlags
	nav      navFlags
	annotate annotateFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show warnings and timing")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
}

// addInputFlags adds extraction flags to a FlagSet.
func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.StringVarP(&f.dialect, "dialect", "d", "", "markdown, latex, or slide (default: from extension)")
	fs.IntVarP(&f.maxLevel, "max-level", "l", 0, "deepest header level to extract (1-6, default: 3)")
	fs.BoolVar(&f.ast, "ast", false, "parse Markdown with a CommonMark parser")
}

// addValidateFlag adds the opt-out for structure validation.
func addValidateFlag(fs *flag.FlagSet, f *inputFlags) {
	fs.BoolVar(&f.noValidate, "no-validate", false, "list headers even if the structure is malformed")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags, withFormat bool) {
	if withFormat {
		fs.StringVarP(&f.format, "format", "f", "", "list, headers, or cfile (default: list)")
	}
	fs.StringVar(&f.color, "color", "", "auto, always, or never (default: auto)")
	fs.StringVar(&f.style, "style", "", "color style name (default: monokai)")
}

// addMarkerFlags adds emphasis marker flags to a FlagSet.
func addMarkerFlags(fs *flag.FlagSet, f *navFlags) {
	fs.StringVar(&f.open, "open", "", "text before the selected header (default: **)")
	fs.StringVar(&f.close, "close", "", "text after the selected header (default: **)")
}

// addTargetFlags adds navigation target flags to a FlagSet.
func addTargetFlags(fs *flag.FlagSet, f *navFlags) {
	fs.IntVar(&f.level, "level", 1, "level of the selected header")
	fs.StringVarP(&f.title, "title", "t", "", "title of the selected header")
}

// addAnnotateFlags adds annotate flags to a FlagSet.
func addAnnotateFlags(fs *flag.FlagSet, f *annotateFlags) {
	fs.IntVar(&f.depth, "depth", 0, "annotate headers up to this level (0 = max level)")
	fs.StringVar(&f.formatter, "formatter", "", "none, prettier, or pandoc (default: none)")
	fs.BoolVarP(&f.inPlace, "in-place", "i", false, "rewrite input files instead of printing")
}

// newFlagSet builds the FlagSet for cmd. Unknown commands get common flags only.
func newFlagSet(cmd string, f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	addCommonFlags(fs, &f.common)

	switch cmd {
	case cmdHeaders:
		addInputFlags(fs, &f.input)
		addValidateFlag(fs, &f.input)
		addOutputFlags(fs, &f.output, true)
	case cmdCheck:
		addInputFlags(fs, &f.input)
	case cmdTOC:
		addInputFlags(fs, &f.input)
		addOutputFlags(fs, &f.output, false)
	case cmdNav:
		addInputFlags(fs, &f.input)
		addOutputFlags(fs, &f.output, false)
		addTargetFlags(fs, &f.nav)
		addMarkerFlags(fs, &f.nav)
	case cmdAnnotate:
		addInputFlags(fs, &f.input)
		addOutputFlags(fs, &f.output, false)
		addMarkerFlags(fs, &f.nav)
		addAnnotateFlags(fs, &f.annotate)
	}
	return fs
}

// parseFlags parses command flags and returns positional args.
func parseFlags(cmd string, args []string) (*cliFlags, *flag.FlagSet, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(cmd, f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}
	return f, fs, fs.Args(), nil
}
