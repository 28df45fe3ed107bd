package release

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// Bumper drives the bump-and-publish sequence against one manifest.
// Dependencies are injected so the control flow is testable without a real
// filesystem or packaging toolchain.
type Bumper struct {
	FS        afero.Fs
	Manifest  string
	Publisher Publisher
	// Status receives human-readable progress lines. Nil discards them.
	Status io.Writer
}

func (b *Bumper) statusf(format string, args ...any) {
	if b.Status != nil {
		fmt.Fprintf(b.Status, format+"\n", args...)
	}
}

// Bump reads the manifest version, increments it per kind, and unless dryRun
// is set rewrites the manifest and runs build then upload. The first failing
// action aborts the sequence; a manifest edit already written stays written.
func (b *Bumper) Bump(ctx context.Context, kind BumpKind, dryRun bool) (old, next Version, err error) {
	content, mv, err := readManifest(b.FS, b.Manifest)
	if err != nil {
		return Version{}, Version{}, err
	}

	old = mv.version
	next = old.Bump(kind)

	b.statusf("Current version: %s", old)
	b.statusf("New version: %s", next)

	if dryRun {
		b.statusf("Dry run: manifest update and publish skipped")
		return old, next, nil
	}

	if err := writeManifest(b.FS, b.Manifest, content, mv, next); err != nil {
		return old, next, err
	}
	b.statusf("Updated %s", b.Manifest)

	if err := b.Publisher.Build(ctx); err != nil {
		return old, next, err
	}
	b.statusf("Build complete")

	if err := b.Publisher.Upload(ctx); err != nil {
		return old, next, err
	}
	b.statusf("Upload complete")

	return old, next, nil
}
