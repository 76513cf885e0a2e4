package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	docnav "github.com/alnah/go-docnav"
	"github.com/alnah/go-docnav/internal/config"
	"github.com/alnah/go-docnav/internal/hints"
)

// Command names.
const (
	cmdHeaders  = "headers"
	cmdCheck    = "check"
	cmdTOC      = "toc"
	cmdNav      = "nav"
	cmdAnnotate = "annotate"
	cmdDoctor   = "doctor"
	cmdVersion  = "version"
	cmdHelp     = "help"
)

var commands = []string{cmdHeaders, cmdCheck, cmdTOC, cmdNav, cmdAnnotate, cmdDoctor, cmdVersion, cmdHelp}

// isCommand reports whether name is a known command.
func isCommand(name string) bool {
	for _, c := range commands {
		if c == name {
			return true
		}
	}
	return false
}

// runMain runs the CLI and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	err := run(ctx, args, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// run dispatches args (without the program name) to a command.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd := args[0]
	switch cmd {
	case cmdHelp, "-h", "--help":
		return runHelp(args[1:], env)
	case cmdVersion, "--version":
		fmt.Fprintf(env.Stdout, "docnav %s\n", Version)
		return nil
	}
	if !isCommand(cmd) {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}

	flags, fs, positional, err := parseFlags(cmd, args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printCommandUsage(env.Stdout, cmd)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	s, err := loadSettings(flags, fs, env)
	if err != nil {
		return err
	}
	if s.verbose {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	switch cmd {
	case cmdHeaders:
		return runHeaders(ctx, positional, s, env)
	case cmdCheck:
		return runCheck(ctx, positional, s, env)
	case cmdTOC:
		return runTOC(ctx, positional, s, env)
	case cmdNav:
		return runNav(ctx, positional, flags.nav.level, flags.nav.title, s, env)
	case cmdAnnotate:
		return runAnnotate(ctx, positional, flags.annotate.inPlace, s, env)
	case cmdDoctor:
		printDoctorResult(env.Stdout, runDoctor(s, env))
		return nil
	}
	return nil
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var fmtErr *docnav.FormatterError
	switch {
	case errors.Is(err, docnav.ErrStructure):
		return hints.ForStructure()
	case errors.Is(err, docnav.ErrNotFound):
		return hints.ForNotFound()
	case errors.As(err, &fmtErr):
		return hints.ForFormatter(fmtErr.Tool)
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, docnav.ErrUnknownDialect):
		return hints.ForDialect()
	}
	return ""
}
