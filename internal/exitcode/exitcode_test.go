package exitcode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fritzprix/fred-mcp/internal/fred"
	"github.com/fritzprix/fred-mcp/internal/release"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"unknown bump kind", fmt.Errorf("parsing: %w", release.ErrUnknownBumpKind), "usage"},
		{"manifest missing", fmt.Errorf("%w: pyproject.toml", release.ErrManifestNotFound), "manifest_not_found"},
		{"version missing", release.ErrVersionNotFound, "version_not_found"},
		{"malformed version", release.ErrMalformedVersion, "malformed_version"},
		{"action failed", &release.ExternalActionError{Action: "build", Err: errors.New("exit status 1")}, "external_action_failed"},
		{"no api key", fred.ErrNoAPIKey, "no_api_key"},
		{"api error", &fred.APIError{Code: 400, Message: "Bad Request"}, "api_error"},
		{"generic", errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, exit := Classify(tt.err)
			if code != tt.wantCode {
				t.Errorf("code = %q, want %q", code, tt.wantCode)
			}
			if exit != GeneralError {
				t.Errorf("exit = %d, want %d", exit, GeneralError)
			}
		})
	}
}

func TestClassifyExitError(t *testing.T) {
	err := New("usage", GeneralError, "bump kind is required")
	code, exit := Classify(fmt.Errorf("wrapped: %w", err))
	if code != "usage" || exit != GeneralError {
		t.Errorf("got (%q, %d)", code, exit)
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &ExitError{Err: inner, ExitCode: 1, Code: "error"}
	if !errors.Is(err, inner) {
		t.Error("Unwrap chain broken")
	}
	if err.Error() != "inner" {
		t.Errorf("Error() = %q", err.Error())
	}
}
