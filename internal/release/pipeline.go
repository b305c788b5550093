package release

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ariel-frischer/semrel/internal/changelog"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for release operations.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Reporter receives step progress.
type Reporter interface {
	Start(label string)
	Success(label string)
	Fail(label string, err error)
	Skip(label, reason string)
}

// Step is one unit of the pipeline.
type Step struct {
	Name string
	// Describe is printed in dry-run mode instead of running the step.
	Describe string
	// SkipReason, when set, marks the step as disabled.
	SkipReason string
	run        func(ctx context.Context) error
}

// StepError reports which step failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("release step %q failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Pipeline runs release steps in order.
type Pipeline struct {
	runner   Runner
	reporter Reporter
	out      io.Writer
	dryRun   bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(p *Pipeline) { p.reporter = r }
}

// WithDryRun makes Run print each step instead of executing it.
func WithDryRun(dryRun bool) Option {
	return func(p *Pipeline) { p.dryRun = dryRun }
}

// WithOutput sets where dry-run descriptions are written.
func WithOutput(w io.Writer) Option {
	return func(p *Pipeline) { p.out = w }
}

// New creates a pipeline using runner for external commands.
func New(runner Runner, opts ...Option) *Pipeline {
	p := &Pipeline{runner: runner, out: io.Discard}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result lists what happened to each step.
type Result struct {
	Completed []string
	Skipped   []string
}

// Run executes the plan's steps in order, stopping at the first failure.
// Cancellation is checked between steps.
func (p *Pipeline) Run(ctx context.Context, plan Plan) (Result, error) {
	var res Result

	for _, step := range p.Steps(plan) {
		if err := ctx.Err(); err != nil {
			return res, &StepError{Step: step.Name, Err: err}
		}

		if step.SkipReason != "" {
			p.skip(step.Name, step.SkipReason)
			res.Skipped = append(res.Skipped, step.Name)
			continue
		}

		if p.dryRun {
			fmt.Fprintf(p.out, "[dry-run] %s: %s\n", step.Name, step.Describe)
			res.Completed = append(res.Completed, step.Name)
			continue
		}

		p.start(step.Name)
		if err := step.run(ctx); err != nil {
			p.fail(step.Name, err)
			return res, &StepError{Step: step.Name, Err: err}
		}
		p.success(step.Name)
		res.Completed = append(res.Completed, step.Name)
	}

	return res, nil
}

// Steps builds the ordered step list for plan.
func (p *Pipeline) Steps(plan Plan) []Step {
	var files []string
	steps := make([]Step, 0, 7)

	manifestStep := Step{Name: "update manifest"}
	if plan.Manifest == nil {
		manifestStep.SkipReason = "no manifest"
	} else {
		path := plan.Manifest.Path()
		files = append(files, path)
		manifestStep.Describe = fmt.Sprintf("set version in %s to %s", path, plan.Version)
		manifestStep.run = func(context.Context) error {
			return plan.Manifest.SetVersion(plan.Version)
		}
	}
	steps = append(steps, manifestStep)

	changelogStep := Step{Name: "write changelog"}
	if plan.ChangelogPath == "" {
		changelogStep.SkipReason = "no changelog file"
	} else {
		files = append(files, plan.ChangelogPath)
		changelogStep.Describe = fmt.Sprintf("%s release %s to %s", placementVerb(plan.ChangelogOptions.Placement), plan.Version, plan.ChangelogPath)
		changelogStep.run = func(context.Context) error {
			return changelog.WriteRelease(plan.ChangelogPath, plan.Notes, plan.ChangelogOptions)
		}
	}
	steps = append(steps, changelogStep)

	commitStep := Step{Name: "commit release"}
	if len(files) == 0 {
		commitStep.SkipReason = "nothing to commit"
	} else {
		commitStep.Describe = fmt.Sprintf("git add %s && git commit -m %q", strings.Join(files, " "), plan.CommitMessage)
		commitStep.run = func(ctx context.Context) error {
			if _, err := p.runner.Run(ctx, "git", append([]string{"add", "--"}, files...)...); err != nil {
				return err
			}
			_, err := p.runner.Run(ctx, "git", "commit", "-m", plan.CommitMessage)
			return err
		}
	}
	steps = append(steps, commitStep)

	steps = append(steps, Step{
		Name:     "tag release",
		Describe: fmt.Sprintf("git tag -a %s", plan.Tag),
		run: func(ctx context.Context) error {
			_, err := p.runner.Run(ctx, "git", "tag", "-a", plan.Tag, "-m", "Release "+plan.Tag)
			return err
		},
	})

	pushStep := Step{
		Name:     "push",
		Describe: fmt.Sprintf("git push --follow-tags %s %s", plan.Remote, plan.Branch),
		run: func(ctx context.Context) error {
			_, err := p.runner.Run(ctx, "git", "push", "--follow-tags", plan.Remote, plan.Branch)
			return err
		},
	}
	if plan.SkipPush {
		pushStep.SkipReason = "push disabled"
	}
	steps = append(steps, pushStep)

	publishStep := Step{Name: "publish"}
	switch {
	case plan.SkipPublish:
		publishStep.SkipReason = "publish disabled"
	case len(plan.PublishCommand) == 0:
		publishStep.SkipReason = "no publish command"
	default:
		publishStep.Describe = strings.Join(plan.PublishCommand, " ")
		publishStep.run = func(ctx context.Context) error {
			_, err := p.runner.Run(ctx, plan.PublishCommand[0], plan.PublishCommand[1:]...)
			return err
		}
	}
	steps = append(steps, publishStep)

	githubStep := Step{
		Name:     "github release",
		Describe: fmt.Sprintf("gh release create %s", plan.Tag),
		run: func(ctx context.Context) error {
			_, err := p.runner.Run(ctx, "gh", "release", "create", plan.Tag, "--title", plan.Tag, "--notes", plan.Notes)
			return err
		},
	}
	if plan.SkipGitHub {
		githubStep.SkipReason = "github release disabled"
	}
	steps = append(steps, githubStep)

	return steps
}

func placementVerb(p changelog.Placement) string {
	if p == changelog.PlacementPrepend {
		return "prepend"
	}
	return "append"
}

func (p *Pipeline) start(name string) {
	logDebug("[release] step %s", name)
	if p.reporter != nil {
		p.reporter.Start(name)
	}
}

func (p *Pipeline) success(name string) {
	if p.reporter != nil {
		p.reporter.Success(name)
	}
}

func (p *Pipeline) fail(name string, err error) {
	if p.reporter != nil {
		p.reporter.Fail(name, err)
	}
}

func (p *Pipeline) skip(name, reason string) {
	logDebug("[release] skip %s: %s", name, reason)
	if p.reporter != nil {
		p.reporter.Skip(name, reason)
	}
}
