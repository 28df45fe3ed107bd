package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fritzprix/fred-mcp/internal/release"
)

const publishTestManifest = `[project]
name = "fred-mcp-server"
version = "1.2.3"
description = "FRED data tools"
`

func setupPublishDir(t *testing.T, config string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(publishTestManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "fred-mcp.json"), []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	return dir
}

func TestPublishPatch(t *testing.T) {
	dir := setupPublishDir(t, `{"publish": {"manifest": "pyproject.toml", "build": "true", "upload": "true"}}`)

	rootCmd.SetArgs([]string{"publish", "patch"})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("publish patch: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "pyproject.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `version = "1.2.4"`) {
		t.Errorf("manifest not bumped:\n%s", data)
	}
}

func TestPublishDryRunLeavesManifestAlone(t *testing.T) {
	dir := setupPublishDir(t, `{"publish": {"manifest": "pyproject.toml", "build": "false", "upload": "false"}}`)

	rootCmd.SetArgs([]string{"publish", "major", "--dry-run"})
	defer func() {
		rootCmd.SetArgs(nil)
		publishDryRun = false
	}()
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("publish major --dry-run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "pyproject.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != publishTestManifest {
		t.Errorf("dry run modified the manifest:\n%s", data)
	}
}

func TestPublishBuildFailure(t *testing.T) {
	setupPublishDir(t, `{"publish": {"manifest": "pyproject.toml", "build": "exit 3", "upload": "true"}}`)

	rootCmd.SetArgs([]string{"publish", "minor"})
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected an error from a failing build command")
	}
	var extErr *release.ExternalActionError
	if !errors.As(err, &extErr) {
		t.Fatalf("error = %v, want ExternalActionError", err)
	}
	if extErr.Action != "build" {
		t.Errorf("Action = %q, want %q", extErr.Action, "build")
	}
}

func TestPublishMissingBumpKind(t *testing.T) {
	setupPublishDir(t, `{}`)

	rootCmd.SetArgs([]string{"publish"})
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	if !errors.Is(err, release.ErrUnknownBumpKind) {
		t.Errorf("error = %v, want ErrUnknownBumpKind", err)
	}
}

func TestPublishInvalidBumpKind(t *testing.T) {
	setupPublishDir(t, `{}`)

	rootCmd.SetArgs([]string{"publish", "feature"})
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	if !errors.Is(err, release.ErrUnknownBumpKind) {
		t.Errorf("error = %v, want ErrUnknownBumpKind", err)
	}
}
