// Package logging provides structured logging for the blue CLI using slog.
//
// Console output goes through [Handler], a compact text handler that
// colourises levels on a terminal and masks secret-looking values. JSON
// output uses the standard library handler. [MultiHandler] fans records
// out to several handlers, which is how --log-file works.
//
// Verbosity flags map onto levels with [LevelFromVerbosity]; the chosen
// logger travels through command contexts with [NewContext] and
// [FromContext].
//
// For tests, use [ForTest] to route log output into the test log:
//
//	logger := logging.ForTest(t)
package logging
