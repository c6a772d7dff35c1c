package exec_commander

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const (
	defaultTimeout = 2 * time.Second
	waitDelay      = 100 * time.Millisecond
)

// ExecCommander runs each command with a deadline so a hung helper cannot
// stall the caller.
type ExecCommander struct {
	timeout time.Duration
}

func NewExecCommander(timeout time.Duration) *ExecCommander {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ExecCommander{timeout: timeout}
}

func (c *ExecCommander) Output(name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	cmd := c.command(ctx, name, args)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return out, commandError(name, args, err, stderr.String())
	}
	return out, nil
}

func (c *ExecCommander) Run(name string, args ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	out, err := c.command(ctx, name, args).CombinedOutput()
	if err != nil {
		return commandError(name, args, err, string(out))
	}
	return nil
}

// command kills the process at the deadline and stops waiting for its
// output pipes shortly after.
func (c *ExecCommander) command(ctx context.Context, name string, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay
	return cmd
}

func (c *ExecCommander) Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func commandError(name string, args []string, err error, output string) error {
	output = strings.TrimSpace(output)
	if output == "" {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, output)
}
