package release

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes an external command and returns its trimmed stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// CommandError wraps a failed command with its arguments and stderr output.
type CommandError struct {
	Name   string
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	cmd := strings.TrimSpace(e.Name + " " + strings.Join(e.Args, " "))
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return fmt.Sprintf("%s: %s", cmd, s)
	}
	return fmt.Sprintf("%s: %v", cmd, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs commands with os/exec in Dir.
type ExecRunner struct {
	Dir string
}

// Run executes name with args. Git hook variables are removed from the
// environment so commands target Dir even when semrel runs inside a hook.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	logDebug("[release] exec %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Env = sanitizedEnv()

	out, err := cmd.Output()
	if err != nil {
		ce := &CommandError{Name: name, Args: args, Err: err}
		if exitErr, ok := err.(*exec.ExitError); ok {
			ce.Stderr = string(exitErr.Stderr)
		}
		return "", ce
	}
	return strings.TrimRight(string(out), " \t\r\n"), nil
}

func sanitizedEnv() []string {
	var env []string
	for _, e := range os.Environ() {
		key, _, _ := strings.Cut(e, "=")
		switch strings.ToUpper(key) {
		case "GIT_DIR", "GIT_INDEX_FILE", "GIT_WORK_TREE",
			"GIT_OBJECT_DIRECTORY", "GIT_ALTERNATE_OBJECT_DIRECTORIES":
			continue
		}
		env = append(env, e)
	}
	return env
}
