package version

import (
	"fmt"
	"io"

	"jerry/domain/app"
)

// Tag will be set via ldflags by CI release workflow
var Tag = "version not set"

type Runner struct {
	out io.Writer
}

func NewRunner(out io.Writer) *Runner { return &Runner{out: out} }

func (r *Runner) Run() error {
	_, err := fmt.Fprintf(r.out, "%s %s\n", app.Name, Tag)
	return err
}
