package app

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/gtfsmerge"
	"github.com/agentstation/gtfsmerge/internal/cmd/application"
	"github.com/agentstation/gtfsmerge/pkg/errors"
)

func newTestApp(t *testing.T, fs afero.Fs) *App {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	logger := zerolog.Nop()
	app, err := New(application.BuildInfo{Version: "1.0.0", Commit: "abc123", Date: "2024-01-01", BuiltBy: "test"},
		WithLogger(&logger),
		WithMergerOptions(gtfsmerge.WithFilesystem(fs), gtfsmerge.WithTempDir("/work")),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return app
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app := newTestApp(t, afero.NewMemMapFs())

	want := application.BuildInfo{Version: "1.0.0", Commit: "abc123", Date: "2024-01-01", BuiltBy: "test"}
	if got := app.Build(); got != want {
		t.Errorf("Build() = %+v, want %+v", got, want)
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
	if got := app.MergeDefaults().Header; got != "default" {
		t.Errorf("MergeDefaults().Header = %q, want default", got)
	}
}

// TestApp_ExecuteMerge runs the merge command through the root command.
func TestApp_ExecuteMerge(t *testing.T) {
	fs := afero.NewMemMapFs()
	for path, content := range map[string]string{
		"/in/a/agency.txt": "agency_id,agency_name\nA1,Metro\n",
		"/in/b/agency.txt": "agency_id,agency_name\nA1,Metro Transit\n",
	} {
		if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	app := newTestApp(t, fs)

	var out bytes.Buffer
	root := app.createRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"merge", "/in", "/out", "-o", "json", "--log-level", "error"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	var report map[string]any
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON report: %v\n%s", err, out.String())
	}
	if report["merged"] != true {
		t.Errorf("merged = %v, want true", report["merged"])
	}

	data, err := afero.ReadFile(fs, "/out/agency.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "agency_id,agency_name\nA1,Metro Transit\n"; got != want {
		t.Errorf("agency.txt = %q, want %q", got, want)
	}
}

// TestApp_InvalidFormat verifies an unknown --format is rejected.
func TestApp_InvalidFormat(t *testing.T) {
	app := newTestApp(t, afero.NewMemMapFs())

	root := app.createRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"tables", "-o", "xml"})
	if err := root.Execute(); err == nil {
		t.Error("expected error for invalid format")
	}
}

// TestApp_Version verifies the version flag template.
func TestApp_Version(t *testing.T) {
	app := newTestApp(t, afero.NewMemMapFs())

	var out bytes.Buffer
	root := app.createRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "gtfsmerge 1.0.0\n" {
		t.Errorf("version output = %q", got)
	}
}

// TestWriteError verifies usage hints follow bad flag values only.
func TestWriteError(t *testing.T) {
	var out bytes.Buffer
	writeError(&out, errors.NewValidationError("format", "xml", "must be one of: table, json, yaml"))
	if !strings.Contains(out.String(), "Error: validation failed for field format") {
		t.Errorf("missing error line: %q", out.String())
	}
	if !strings.Contains(out.String(), "gtfsmerge --help") {
		t.Errorf("missing usage hint: %q", out.String())
	}

	out.Reset()
	writeError(&out, errors.NewConfigError("input", "input folder does not exist", nil))
	if strings.Contains(out.String(), "--help") {
		t.Errorf("unexpected usage hint: %q", out.String())
	}
}
