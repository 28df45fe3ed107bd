package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/fritzprix/fred-mcp/internal/jsonout"
	"github.com/fritzprix/fred-mcp/internal/release"
)

var publishDryRun bool

func init() {
	publishCmd.Flags().BoolVarP(&publishDryRun, "dry-run", "d", false, "compute and print the bump without touching the manifest or publishing")
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish <patch|minor|major>",
	Short: "Bump the package version, build and upload",
	Long: `Bump the semantic version in the package manifest, then run the configured
build and upload commands.

The manifest, build and upload commands come from fred-mcp.json:

  {
    "publish": {
      "manifest": "pyproject.toml",
      "build": "uv build",
      "upload": "uv publish"
    }
  }

Only the version line of the manifest is rewritten; every other byte is left
untouched. A failed build or upload leaves the manifest edit in place.`,
	Example: `  fred-mcp publish patch
  fred-mcp publish minor --dry-run
  fred-mcp publish major`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPublish,
}

func runPublish(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Usage()
		return fmt.Errorf("missing bump kind: %w", release.ErrUnknownBumpKind)
	}

	kind, err := release.ParseBumpKind(args[0])
	if err != nil {
		_ = cmd.Usage()
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	b := &release.Bumper{
		FS:       afero.NewOsFs(),
		Manifest: cfg.Publish.Manifest,
		Publisher: &release.ExecPublisher{
			BuildCmd:  cfg.Publish.Build,
			UploadCmd: cfg.Publish.Upload,
			Stdout:    jsonout.MsgOut(),
			Stderr:    os.Stderr,
		},
		Status: jsonout.MsgOut(),
	}
	if jsonout.Enabled {
		b.Status = nil
	}

	old, next, err := b.Bump(cmd.Context(), kind, publishDryRun)
	if err != nil {
		return err
	}

	if jsonout.Enabled {
		return jsonout.Write(struct {
			OldVersion string `json:"old_version"`
			NewVersion string `json:"new_version"`
			DryRun     bool   `json:"dry_run"`
		}{OldVersion: old.String(), NewVersion: next.String(), DryRun: publishDryRun})
	}
	return nil
}
