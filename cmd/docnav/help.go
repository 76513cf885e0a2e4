package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docnav <command> [flags] [files]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  headers    List document headers")
	fmt.Fprintln(w, "  check      Validate document structure")
	fmt.Fprintln(w, "  toc        Show the top-level outline")
	fmt.Fprintln(w, "  nav        Show where a header sits in the outline")
	fmt.Fprintln(w, "  annotate   Insert navigation blocks after headers")
	fmt.Fprintln(w, "  doctor     Check external formatters and environment")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docnav help <command>' for details on a specific command.")
}

// printCommonUsage prints flags shared by all commands.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show warnings and timing")
}

// printInputUsage prints extraction flags.
func printInputUsage(w io.Writer) {
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -d, --dialect <s>         markdown, latex, slide (default: from extension)")
	fmt.Fprintln(w, "  -l, --max-level <n>       Deepest header level (1-6, default: 3)")
	fmt.Fprintln(w, "      --ast                 CommonMark-aware Markdown parsing")
}

// printColorUsage prints color flags.
func printColorUsage(w io.Writer) {
	fmt.Fprintln(w, "Color:")
	fmt.Fprintln(w, "      --color <s>           auto, always, never (default: auto)")
	fmt.Fprintln(w, "      --style <s>           Color style (default: monokai)")
}

// printMarkerUsage prints emphasis marker flags.
func printMarkerUsage(w io.Writer) {
	fmt.Fprintln(w, "Markers:")
	fmt.Fprintln(w, "      --open <s>            Text before the selected header (default: **)")
	fmt.Fprintln(w, "      --close <s>           Text after the selected header (default: **)")
}

// printCommandUsage prints usage for cmd.
func printCommandUsage(w io.Writer, cmd string) {
	switch cmd {
	case cmdHeaders:
		fmt.Fprintln(w, "Usage: docnav headers <files...> [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "List headers. Structure is validated after printing.")
		fmt.Fprintln(w)
		printInputUsage(w)
		fmt.Fprintln(w, "      --no-validate         Skip structure validation")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Output:")
		fmt.Fprintln(w, "  -f, --format <s>          list, headers, cfile (default: list)")
		fmt.Fprintln(w)
		printColorUsage(w)
	case cmdCheck:
		fmt.Fprintln(w, "Usage: docnav check <files...> [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Validate structure: unique top-level titles, no skipped levels.")
		fmt.Fprintln(w)
		printInputUsage(w)
	case cmdTOC:
		fmt.Fprintln(w, "Usage: docnav toc <files...> [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show the top-level outline.")
		fmt.Fprintln(w)
		printInputUsage(w)
		fmt.Fprintln(w)
		printColorUsage(w)
	case cmdNav:
		fmt.Fprintln(w, "Usage: docnav nav <file> --title <s> [--level <n>] [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show the outline expanded down to the selected header.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Target:")
		fmt.Fprintln(w, "  -t, --title <s>           Title of the selected header (required)")
		fmt.Fprintln(w, "      --level <n>           Level of the selected header (default: 1)")
		fmt.Fprintln(w)
		printMarkerUsage(w)
		fmt.Fprintln(w)
		printInputUsage(w)
		fmt.Fprintln(w)
		printColorUsage(w)
	case cmdAnnotate:
		fmt.Fprintln(w, "Usage: docnav annotate <files...> [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Insert a navigation block after each header. Re-running replaces old blocks.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Annotate:")
		fmt.Fprintln(w, "      --depth <n>           Annotate headers up to this level (0 = max level)")
		fmt.Fprintln(w, "      --formatter <s>       none, prettier, pandoc (default: none)")
		fmt.Fprintln(w, "  -i, --in-place            Rewrite files instead of printing")
		fmt.Fprintln(w)
		printMarkerUsage(w)
		fmt.Fprintln(w)
		printInputUsage(w)
		fmt.Fprintln(w)
		printColorUsage(w)
	case cmdDoctor:
		fmt.Fprintln(w, "Usage: docnav doctor")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Check external formatters and environment variables.")
	case cmdVersion:
		fmt.Fprintln(w, "Usage: docnav version")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show version information.")
		return
	case cmdHelp:
		fmt.Fprintln(w, "Usage: docnav help [command]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show help for a command.")
		return
	default:
		printUsage(w)
		return
	}
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}
	if !isCommand(args[0]) {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
	printCommandUsage(env.Stdout, args[0])
	return nil
}
