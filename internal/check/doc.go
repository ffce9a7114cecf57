// Package check evaluates the requirements a workspace declares in
// blue.toml and reports the outcome.
//
// Each requirement becomes a Check. A Runner executes the checks in order
// and aggregates their results into a Report, which a Reporter writes as
// text, JSON or YAML:
//
//	runner := check.ForWorkspace(ws, check.Options{})
//	report := runner.Run(ctx)
//	_ = check.NewReporter(os.Stdout, check.FormatText).Report(report)
//
// A failed requirement has SeverityError. Problems that do not stop work in
// the workspace, such as unknown keys in blue.toml, are warnings.
package check
