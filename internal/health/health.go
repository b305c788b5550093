// Package health provides dependency health checks for semrel. It verifies
// that the external tools used by the release pipeline (git, gh and the
// publish command) are installed, returning structured reports used by the
// 'semrel doctor' command.
package health

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultProbeTimeout bounds each version probe.
const DefaultProbeTimeout = 5 * time.Second

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
	// Required checks fail the report; optional ones only warn.
	Required bool
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// Probe describes an external tool to check.
type Probe struct {
	Name     string
	Binary   string
	Args     []string
	Required bool
}

// Requirements selects which optional tools the current config needs.
type Requirements struct {
	// GitHubRelease requires the gh CLI.
	GitHubRelease bool
	// PublishBinary is the first word of the publish command, if publishing
	// is enabled.
	PublishBinary string
}

// DefaultProbes returns the probes for the given requirements, in report order.
func DefaultProbes(req Requirements) []Probe {
	probes := []Probe{
		{Name: "git", Binary: "git", Args: []string{"--version"}, Required: true},
		{Name: "gh", Binary: "gh", Args: []string{"--version"}, Required: req.GitHubRelease},
	}
	if req.PublishBinary != "" && req.PublishBinary != "git" && req.PublishBinary != "gh" {
		probes = append(probes, Probe{
			Name:     req.PublishBinary,
			Binary:   req.PublishBinary,
			Args:     []string{"--version"},
			Required: true,
		})
	}
	return probes
}

// Checker runs probes.
type Checker struct {
	LookPath func(file string) (string, error)
	Output   func(ctx context.Context, name string, args ...string) (string, error)
	Timeout  time.Duration
}

// NewChecker returns a checker backed by os/exec.
func NewChecker() *Checker {
	return &Checker{
		LookPath: exec.LookPath,
		Output: func(ctx context.Context, name string, args ...string) (string, error) {
			out, err := exec.CommandContext(ctx, name, args...).Output()
			return string(out), err
		},
		Timeout: DefaultProbeTimeout,
	}
}

// RunHealthChecks runs every probe concurrently and returns the results in
// probe order. A failed optional probe does not fail the report.
func (c *Checker) RunHealthChecks(ctx context.Context, probes []Probe) *HealthReport {
	results := make([]CheckResult, len(probes))

	g, ctx := errgroup.WithContext(ctx)
	for i, p := range probes {
		g.Go(func() error {
			results[i] = c.check(ctx, p)
			return nil
		})
	}
	// Probes record failures in their results instead of returning errors.
	_ = g.Wait()

	report := &HealthReport{Checks: results, Passed: true}
	for _, r := range results {
		if r.Required && !r.Passed {
			report.Passed = false
		}
	}
	return report
}

func (c *Checker) check(ctx context.Context, p Probe) CheckResult {
	result := CheckResult{Name: p.Name, Required: p.Required}

	path, err := c.LookPath(p.Binary)
	if err != nil {
		result.Message = fmt.Sprintf("%s not found in PATH", p.Binary)
		return result
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := c.Output(ctx, path, p.Args...)
	if err != nil {
		result.Message = fmt.Sprintf("%s found but failed to run: %v", p.Binary, err)
		return result
	}

	result.Passed = true
	result.Message = firstLine(out)
	if result.Message == "" {
		result.Message = "found"
	}
	return result
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var b strings.Builder
	for _, check := range report.Checks {
		switch {
		case check.Passed:
			fmt.Fprintf(&b, "✓ %s: %s\n", check.Name, check.Message)
		case check.Required:
			fmt.Fprintf(&b, "✗ %s: %s\n", check.Name, check.Message)
		default:
			fmt.Fprintf(&b, "○ %s: %s (optional)\n", check.Name, check.Message)
		}
	}
	return b.String()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(line)
}
