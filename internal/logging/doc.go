// Package logging provides structured logging for the vibe CLI built on
// log/slog.
//
// The default text handler is TTY-aware: output is colorized when stderr is
// a terminal that supports it (respecting NO_COLOR and TERM=dumb), and plain
// otherwise. A JSON handler is available for machine consumption, and
// [NewMultiHandler] fans records out to several handlers at once (e.g. a
// colorized terminal plus a JSON log file).
//
// Verbosity flags map to levels via [LevelFromVerbosity]; loggers travel on
// the command context via [NewContext] and [FromContext].
package logging
