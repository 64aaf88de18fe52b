// Package errors provides error handling conventions for the vibe CLI.
//
// It is a thin facade over github.com/cockroachdb/errors, re-exporting the
// constructors and inspection helpers the rest of the codebase needs, plus
// an ExitError type for CLI exit code handling.
//
// # Exit Codes
//
// The package defines standard exit codes for CLI applications:
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports error unwrapping via [errors.Unwrap] and [errors.As]:
//
//	err := vibeerrors.NewUserError(err, "Run 'vibe targets' to see valid targets")
//	var exitErr *vibeerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
