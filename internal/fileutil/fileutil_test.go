package fileutil_test

// Notes:
// - TestWriteTempFile_CreateTempError modifies TMPDIR through t.Setenv and
//   cannot run in parallel with other tests.
// - WriteFileAtomic error branches after CreateTemp (write, chmod, rename)
//   are not forced; they need a failing filesystem.

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/alnah/go-docnav/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{"markdown", "md", nil},
		{"latex", "tex", nil},
		{"empty", "", fileutil.ErrExtensionEmpty},
		{"forward slash", "../etc/passwd", fileutil.ErrExtensionPathTraversal},
		{"backslash", "..\\system32", fileutil.ErrExtensionPathTraversal},
		{"null byte", "md\x00exe", fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := fileutil.ValidateExtension(tt.extension); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteTempFile - Temporary file creation and cleanup
// ---------------------------------------------------------------------------

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	content := "\\section{Intro}\n"
	path, cleanup, err := fileutil.WriteTempFile(content, "tex")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}

	if !strings.HasPrefix(filepath.Base(path), "docnav-") || !strings.HasSuffix(path, ".tex") {
		t.Errorf("path %q, want docnav-*.tex", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(data) != content {
		t.Errorf("content = %q, want %q", data, content)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("temp file still exists after cleanup: %s", path)
	}
}

func TestWriteTempFile_InvalidExtension(t *testing.T) {
	t.Parallel()

	_, cleanup, err := fileutil.WriteTempFile("content", "../md")
	if cleanup != nil {
		t.Error("cleanup returned on error")
	}
	if !errors.Is(err, fileutil.ErrExtensionPathTraversal) {
		t.Errorf("WriteTempFile() error = %v, want ErrExtensionPathTraversal", err)
	}
}

func TestWriteTempFile_CreateTempError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("TMPDIR is not consulted on windows")
	}
	t.Setenv("TMPDIR", "/nonexistent/path/that/does/not/exist")

	_, cleanup, err := fileutil.WriteTempFile("content", "md")
	if cleanup != nil {
		defer cleanup()
	}
	if err == nil || !strings.Contains(err.Error(), "creating temp file") {
		t.Errorf("WriteTempFile() error = %v, want 'creating temp file'", err)
	}
}

// ---------------------------------------------------------------------------
// TestSplitLines / TestJoinLines - Line handling
// ---------------------------------------------------------------------------

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single line no newline", "# A", []string{"# A"}},
		{"trailing newline dropped", "# A\ntext\n", []string{"# A", "text"}},
		{"only one trailing newline dropped", "# A\n\n", []string{"# A", ""}},
		{"crlf", "# A\r\ntext\r\n", []string{"# A", "text"}},
		{"bare cr", "# A\rtext", []string{"# A", "text"}},
		{"blank line", "\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.SplitLines(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestJoinLines(t *testing.T) {
	t.Parallel()

	if got := fileutil.JoinLines(nil); got != "" {
		t.Errorf("JoinLines(nil) = %q, want empty", got)
	}
	text := "# A\n\ntext\n"
	if got := fileutil.JoinLines(fileutil.SplitLines(text)); got != text {
		t.Errorf("JoinLines(SplitLines(%q)) = %q", text, got)
	}
}

// ---------------------------------------------------------------------------
// TestLineStyle - Preserving line endings
// ---------------------------------------------------------------------------

func TestDetectLineStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want fileutil.LineStyle
	}{
		{"empty", "", fileutil.LineStyle{Newline: "\n", FinalNewline: true}},
		{"lf", "# A\ntext\n", fileutil.LineStyle{Newline: "\n", FinalNewline: true}},
		{"lf no final newline", "# A\ntext", fileutil.LineStyle{Newline: "\n"}},
		{"crlf", "# A\r\ntext\r\n", fileutil.LineStyle{Newline: "\r\n", FinalNewline: true}},
		{"crlf no final newline", "# A\r\ntext", fileutil.LineStyle{Newline: "\r\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.DetectLineStyle(tt.text); got != tt.want {
				t.Errorf("DetectLineStyle(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLineStyle_Join(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"# A\r\n\r\ntext\r\n",
		"# A\r\ntext",
		"# A\ntext",
		"# A\n\n",
	} {
		style := fileutil.DetectLineStyle(text)
		if got := style.Join(fileutil.SplitLines(text)); got != text {
			t.Errorf("Join(SplitLines(%q)) = %q", text, got)
		}
	}

	if got := fileutil.DetectLineStyle("a\r\n").Join(nil); got != "" {
		t.Errorf("Join(nil) = %q, want empty", got)
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - In-place rewrites
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("new file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "new.md")
		if err := fileutil.WriteFileAtomic(path, "# New\n"); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil || string(data) != "# New\n" {
			t.Errorf("content = %q, %v", data, err)
		}
	})

	t.Run("replaces and keeps permissions", func(t *testing.T) {
		t.Parallel()
		if runtime.GOOS == "windows" {
			t.Skip("unix permissions")
		}

		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")
		if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
			t.Fatal(err)
		}

		if err := fileutil.WriteFileAtomic(path, "new"); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Errorf("mode = %v, want 0600", info.Mode().Perm())
		}
		data, _ := os.ReadFile(path)
		if string(data) != "new" {
			t.Errorf("content = %q, want %q", data, "new")
		}

		entries, _ := os.ReadDir(dir)
		if len(entries) != 1 {
			t.Errorf("temp files left behind: %d entries", len(entries))
		}
	})

	t.Run("directory target", func(t *testing.T) {
		t.Parallel()

		err := fileutil.WriteFileAtomic(t.TempDir(), "x")
		if !errors.Is(err, fileutil.ErrNotRegularFile) {
			t.Errorf("WriteFileAtomic(dir) error = %v, want ErrNotRegularFile", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestFileExists - File existence check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "docnav.yaml")
	if err := os.WriteFile(file, []byte("workers: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"directory", dir, false},
		{"missing", filepath.Join(dir, "missing.yaml"), false},
		{"empty path", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Config name or path
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"docnav", false},
		{"docnav.yaml", false},
		{"./docnav.yaml", true},
		{"../shared/docnav.yaml", true},
		{"/etc/docnav.yaml", true},
		{"C:\\docnav.yaml", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
