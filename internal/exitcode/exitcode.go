// Package exitcode maps errors to process exit codes and machine-readable
// code strings for --json error output.
package exitcode

import (
	"errors"
	"fmt"

	"github.com/fritzprix/fred-mcp/internal/export"
	"github.com/fritzprix/fred-mcp/internal/fred"
	"github.com/fritzprix/fred-mcp/internal/release"
)

const (
	Success      = 0
	GeneralError = 1
)

// ExitError wraps an error with a semantic exit code and machine-readable code string.
type ExitError struct {
	Err      error
	ExitCode int
	Code     string
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// New creates an ExitError with the given code, exit code, and message.
func New(code string, exitCode int, msg string) *ExitError {
	return &ExitError{
		Err:      fmt.Errorf("%s", msg),
		ExitCode: exitCode,
		Code:     code,
	}
}

// Classify returns (code, exitCode) for an error. Every failure in this tool
// is fatal and exits 1; the code string distinguishes them for --json callers.
func Classify(err error) (string, int) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, exitErr.ExitCode
	}

	var actionErr *release.ExternalActionError
	var apiErr *fred.APIError

	switch {
	case errors.Is(err, release.ErrUnknownBumpKind):
		return "usage", GeneralError
	case errors.Is(err, release.ErrManifestNotFound):
		return "manifest_not_found", GeneralError
	case errors.Is(err, release.ErrVersionNotFound):
		return "version_not_found", GeneralError
	case errors.Is(err, release.ErrMalformedVersion):
		return "malformed_version", GeneralError
	case errors.As(err, &actionErr):
		return "external_action_failed", GeneralError
	case errors.Is(err, fred.ErrNoAPIKey):
		return "no_api_key", GeneralError
	case errors.As(err, &apiErr):
		return "api_error", GeneralError
	case errors.Is(err, export.ErrPathNotAllowed):
		return "export_not_allowed", GeneralError
	default:
		return "error", GeneralError
	}
}
