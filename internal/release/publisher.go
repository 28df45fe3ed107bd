package release

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Publisher performs the two external actions of a publish: building the
// distributable artifacts and uploading them to the package index.
type Publisher interface {
	Build(ctx context.Context) error
	Upload(ctx context.Context) error
}

// ExternalActionError reports a failed build or upload action. The manifest
// edit is not rolled back; the caller sees exactly which action stopped the
// sequence.
type ExternalActionError struct {
	Action string
	Err    error
}

func (e *ExternalActionError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Action, e.Err)
}

func (e *ExternalActionError) Unwrap() error {
	return e.Err
}

// ExecPublisher runs configured shell commands for build and upload.
type ExecPublisher struct {
	BuildCmd  string
	UploadCmd string
	Dir       string
	Stdout    io.Writer
	Stderr    io.Writer
}

func (p *ExecPublisher) run(ctx context.Context, action, cmdline string) error {
	c := exec.CommandContext(ctx, "sh", "-c", cmdline)
	c.Dir = p.Dir
	c.Stdout = p.Stdout
	c.Stderr = p.Stderr
	if err := c.Run(); err != nil {
		return &ExternalActionError{Action: action, Err: err}
	}
	return nil
}

// Build runs the build command.
func (p *ExecPublisher) Build(ctx context.Context) error {
	return p.run(ctx, "build", p.BuildCmd)
}

// Upload runs the upload command.
func (p *ExecPublisher) Upload(ctx context.Context) error {
	return p.run(ctx, "upload", p.UploadCmd)
}
