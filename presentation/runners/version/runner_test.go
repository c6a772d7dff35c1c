package version

import (
	"bytes"
	"errors"
	"testing"

	"jerry/domain/app"
)

func TestRunner_Run_PrintsVersion(t *testing.T) {
	prevTag := Tag
	t.Cleanup(func() { Tag = prevTag })
	Tag = "v1.2.3-test" // imitate ldflags injection

	var buf bytes.Buffer
	if err := NewRunner(&buf).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if want := app.Name + " v1.2.3-test\n"; buf.String() != want {
		t.Fatalf("stdout = %q, want %q", buf.String(), want)
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRunner_Run_WriteError(t *testing.T) {
	if err := NewRunner(brokenWriter{}).Run(); err == nil {
		t.Fatal("expected write error")
	}
}
