package candidate

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DatasetPathEnv carries the dataset path to subprocess candidates. The
// lifecycle contract only passes the path to setup, but each search call is a
// fresh process, so the path is re-exported on every invocation.
const DatasetPathEnv = "MATCHBENCH_DATASET"

// Command adapts an external executable to the candidate contract.
//
// The executable is invoked once per lifecycle phase:
//
//	<prog> [args...] setup <dataset-path>
//	<prog> [args...] search <query>
//	<prog> [args...] cleanup
//
// The executable must handle all three phases: a candidate with nothing to
// index or release simply exits 0 on setup and cleanup. A search invocation
// prints one matched record id per line on stdout. A non-zero exit status in
// any phase is reported as a candidate error; stderr is folded into the
// error message.
type Command struct {
	prog        string
	args        []string
	datasetPath string
}

// NewCommand creates a subprocess candidate for the given program and
// leading arguments.
func NewCommand(prog string, args ...string) *Command {
	return &Command{prog: prog, args: args}
}

// Setup runs the executable's setup phase and remembers the dataset path for
// subsequent search invocations.
func (c *Command) Setup(ctx context.Context, datasetPath string) error {
	c.datasetPath = datasetPath
	_, err := c.run(ctx, "setup", datasetPath)
	return err
}

// Search runs one search invocation and parses its stdout into ids.
func (c *Command) Search(ctx context.Context, query string) ([]string, error) {
	out, err := c.run(ctx, "search", query)
	if err != nil {
		return nil, err
	}
	var ids []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		ids = append(ids, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read candidate output: %w", err)
	}
	return ids, nil
}

// Cleanup runs the executable's cleanup phase.
func (c *Command) Cleanup(ctx context.Context) error {
	_, err := c.run(ctx, "cleanup")
	return err
}

func (c *Command) run(ctx context.Context, phase string, extra ...string) ([]byte, error) {
	argv := append(append([]string{}, c.args...), phase)
	argv = append(argv, extra...)
	cmd := exec.CommandContext(ctx, c.prog, argv...)
	cmd.Env = append(os.Environ(), DatasetPathEnv+"="+c.datasetPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return nil, fmt.Errorf("candidate %s failed: %w: %s", phase, err, detail)
		}
		return nil, fmt.Errorf("candidate %s failed: %w", phase, err)
	}
	return stdout.Bytes(), nil
}
