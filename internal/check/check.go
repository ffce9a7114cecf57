package check

import (
	"context"
	"time"

	"github.com/slekup/blue/internal/logging"
)

// Check is the interface that requirement checks must implement.
type Check interface {
	// Name returns the identifier for this check.
	Name() string

	// Category returns the grouping for this check.
	Category() string

	// Run executes the check and returns its result.
	Run(ctx context.Context) *CheckResult
}

// Runner executes checks and aggregates their results.
type Runner struct {
	workspace string
	checks    []Check
}

// NewRunner creates a runner for the named workspace.
func NewRunner(workspace string) *Runner {
	return &Runner{
		workspace: workspace,
		checks:    make([]Check, 0),
	}
}

// AddCheck registers a check with the runner.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Len returns the number of registered checks.
func (r *Runner) Len() int {
	return len(r.checks)
}

// Run executes all registered checks in order and returns a report.
func (r *Runner) Run(ctx context.Context) *Report {
	log := logging.FromContext(ctx)

	report := &Report{
		Workspace: r.workspace,
		Timestamp: time.Now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, c := range r.checks {
		result := c.Run(ctx)
		log.Debug("check finished", "name", result.Name, "category", result.Category, "status", result.Status.String())
		report.Results = append(report.Results, result)

		switch result.Status {
		case SeverityPass:
			report.Summary.Passed++
		case SeverityInfo:
			report.Summary.Info++
		case SeverityWarning:
			report.Summary.Warnings++
		case SeverityError:
			report.Summary.Errors++
		}
	}

	return report
}

// Report aggregates all check results with timing and summary.
type Report struct {
	// Workspace is the name from blue.toml.
	Workspace string `json:"workspace" yaml:"workspace"`

	// Timestamp is when the run started.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// Results contains the outcome of each check.
	Results []*CheckResult `json:"results" yaml:"results"`

	// Summary contains counts by severity level.
	Summary Summary `json:"summary" yaml:"summary"`
}

// HasErrors returns true if any check has SeverityError.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings returns true if any check has SeverityWarning.
func (r *Report) HasWarnings() bool {
	return r.Summary.Warnings > 0
}
