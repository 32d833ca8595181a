package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ldo/make-expr-answer/pkg/errors"
)

func TestRenderCommandNoAnswers(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.dot")

	c := New(io.Discard, LogInfo)
	cmd := c.renderCommand()
	cmd.SetArgs([]string{"2", "3", "--answer", "100", "--format", "dot", "--output", out})

	// An unreachable target is reported, not an error, and no file is written.
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output file written despite no answers (stat err = %v)", err)
	}
}

func TestRenderCommandWritesDOT(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.dot")

	c := New(io.Discard, LogInfo)
	cmd := c.renderCommand()
	cmd.SetArgs([]string{"2", "3", "--answer", "5", "--format", "dot", "--output", out})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if len(data) == 0 {
		t.Error("output file is empty")
	}
}

func TestValidateRenderFormat(t *testing.T) {
	for _, format := range []string{"dot", "svg", "png", "SVG"} {
		if err := validateRenderFormat(format); err != nil {
			t.Errorf("validateRenderFormat(%q) = %v, want nil", format, err)
		}
	}
	if err := validateRenderFormat("pdf"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("validateRenderFormat(pdf) = %v, want INVALID_FORMAT", err)
	}
}
