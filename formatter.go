package docnav

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/alnah/go-docnav/internal/fileutil"
	"github.com/alnah/go-docnav/internal/process"
)

// Formatter normalizes document text with an external tool.
type Formatter interface {
	Format(ctx context.Context, content string, d Dialect) (string, error)
}

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec. The tool runs in its
// own process group, which is killed as a whole when ctx is canceled.
type ExecRunner struct{}

// execWaitDelay bounds how long Wait blocks on output pipes after cancellation.
const execWaitDelay = 2 * time.Second

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- formatter names are fixed
	process.Isolate(cmd)
	cmd.Cancel = func() error { return process.KillGroup(cmd.Process.Pid) }
	cmd.WaitDelay = execWaitDelay

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", "", fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("starting command: %w", err)
	}

	stderrContent, err := io.ReadAll(stderrPipe)
	if err != nil {
		return "", "", fmt.Errorf("reading stderr: %w", err)
	}

	err = cmd.Wait()
	return stdout.String(), string(stderrContent), err
}

// FormatterError reports a failed external formatter run.
// It matches ErrFormatterFailed with errors.Is.
type FormatterError struct {
	Tool   string
	Stderr string
	Err    error
}

func (e *FormatterError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s: %s: %v", ErrFormatterFailed, e.Tool, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s: %v", ErrFormatterFailed, e.Tool, e.Stderr, e.Err)
}

// Is reports whether target is ErrFormatterFailed.
func (e *FormatterError) Is(target error) bool { return target == ErrFormatterFailed }

// Unwrap returns the underlying process error.
func (e *FormatterError) Unwrap() error { return e.Err }

// Formatter names accepted by NewFormatter.
const (
	FormatterNone     = "none"
	FormatterPrettier = "prettier"
	FormatterPandoc   = "pandoc"
)

// FormatterNames lists the accepted formatter names.
var FormatterNames = []string{FormatterNone, FormatterPrettier, FormatterPandoc}

// NewFormatter returns the formatter registered under name.
// An empty name selects the no-op formatter.
func NewFormatter(name string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatterNone:
		return NopFormatter{}, nil
	case FormatterPrettier:
		return NewPrettierFormatter(), nil
	case FormatterPandoc:
		return NewPandocFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be none, prettier, or pandoc)", ErrUnknownFormatter, name)
	}
}

// NopFormatter returns content unchanged.
type NopFormatter struct{}

func (NopFormatter) Format(_ context.Context, content string, _ Dialect) (string, error) {
	return content, nil
}

// PrettierFormatter reformats Markdown with the prettier CLI.
// Other dialects pass through unchanged, as prettier has no parser for them.
type PrettierFormatter struct {
	Runner CommandRunner
}

// NewPrettierFormatter creates a PrettierFormatter with a real command runner.
func NewPrettierFormatter() *PrettierFormatter {
	return &PrettierFormatter{Runner: &ExecRunner{}}
}

func (f *PrettierFormatter) Format(ctx context.Context, content string, d Dialect) (string, error) {
	if content == "" {
		return "", ErrEmptyContent
	}
	if d != Markdown {
		return content, nil
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(content, "md")
	if err != nil {
		return "", err
	}
	defer cleanup()

	stdout, stderr, err := f.Runner.Run(ctx, "prettier", "--parser", "markdown", "--prose-wrap", "preserve", tmpPath)
	if err != nil {
		return "", &FormatterError{Tool: FormatterPrettier, Stderr: strings.TrimSpace(stderr), Err: err}
	}
	return stdout, nil
}

// PandocFormatter round-trips a document through pandoc in its own format.
type PandocFormatter struct {
	Runner CommandRunner
}

// NewPandocFormatter creates a PandocFormatter with a real command runner.
func NewPandocFormatter() *PandocFormatter {
	return &PandocFormatter{Runner: &ExecRunner{}}
}

// pandocFormats maps dialects to pandoc reader/writer names and temp file extensions.
var pandocFormats = map[Dialect]struct{ format, ext string }{
	Markdown: {format: "markdown-fancy_lists", ext: "md"},
	LaTeX:    {format: "latex", ext: "tex"},
}

func (f *PandocFormatter) Format(ctx context.Context, content string, d Dialect) (string, error) {
	if content == "" {
		return "", ErrEmptyContent
	}
	pf, ok := pandocFormats[d]
	if !ok {
		return content, nil
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(content, pf.ext)
	if err != nil {
		return "", err
	}
	defer cleanup()

	stdout, stderr, err := f.Runner.Run(ctx, "pandoc", tmpPath, "-f", pf.format, "-t", pf.format, "--wrap=preserve")
	if err != nil {
		return "", &FormatterError{Tool: FormatterPandoc, Stderr: strings.TrimSpace(stderr), Err: err}
	}
	return stdout, nil
}
