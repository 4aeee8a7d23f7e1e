package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/conn-castle/propapp-install/internal/config"
	"github.com/conn-castle/propapp-install/internal/testutil"
)

type fakeProbe struct {
	version    string
	versionErr error
	extensions []string
	extErr     error
}

func (p fakeProbe) Version(context.Context) (string, error) {
	return p.version, p.versionErr
}

func (p fakeProbe) Extensions(context.Context) ([]string, error) {
	return p.extensions, p.extErr
}

func countStatus(results []Result, status Status) int {
	n := 0
	for _, r := range results {
		if r.Status == status {
			n++
		}
	}
	return n
}

func TestCheckRuntime(t *testing.T) {
	runtime := config.RuntimeConfig{MinVersion: "7.4.0", Extensions: []string{"pdo", "gd", "mbstring"}}

	results := CheckRuntime(context.Background(), fakeProbe{version: "8.1.2", extensions: []string{"PDO", "mbstring"}}, runtime)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d: %+v", len(results), results)
	}
	if results[0].Status != StatusOK || results[0].Message != "PHP 8.1.2 satisfies 7.4.0 or higher" {
		t.Fatalf("unexpected runtime result: %+v", results[0])
	}
	if results[2].Status != StatusFail || results[2].Message != "Missing: gd" {
		t.Fatalf("expected gd to fail, got %+v", results[2])
	}
	if results[2].Recommendation == "" {
		t.Fatalf("expected recommendation for missing extension")
	}
	if countStatus(results, StatusOK) != 3 {
		t.Fatalf("expected 3 OK results, got %+v", results)
	}
}

func TestCheckRuntimeTooOldStillListsExtensions(t *testing.T) {
	runtime := config.RuntimeConfig{MinVersion: "7.4.0", Extensions: []string{"pdo"}}

	results := CheckRuntime(context.Background(), fakeProbe{version: "7.2.0", extensions: []string{"pdo"}}, runtime)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %+v", results)
	}
	if results[0].Status != StatusFail {
		t.Fatalf("expected runtime failure, got %+v", results[0])
	}
	if results[1].Status != StatusOK {
		t.Fatalf("expected extension OK, got %+v", results[1])
	}
}

func TestCheckRuntimeProbeFailure(t *testing.T) {
	runtime := config.RuntimeConfig{MinVersion: "7.4.0", Extensions: []string{"pdo"}}

	results := CheckRuntime(context.Background(), fakeProbe{versionErr: errors.New("php: not found")}, runtime)
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("expected single failure, got %+v", results)
	}
}

func TestCheckRuntimeExtensionProbeFailure(t *testing.T) {
	runtime := config.RuntimeConfig{MinVersion: "7.4.0", Extensions: []string{"pdo"}}

	results := CheckRuntime(context.Background(), fakeProbe{version: "8.0.0", extErr: errors.New("boom")}, runtime)
	if len(results) != 2 || results[1].Status != StatusFail {
		t.Fatalf("expected extension probe failure, got %+v", results)
	}
}

func TestCheckStructure(t *testing.T) {
	root := t.TempDir()
	dirs := []string{"admin_dashboard/uploads", "admin_dashboard/uploads/temp"}

	results := CheckStructure(root, dirs)
	if countStatus(results, StatusFail) != 2 {
		t.Fatalf("expected 2 failures for empty root, got %+v", results)
	}

	testutil.WriteFile(t, root, "admin_dashboard/uploads", "file")
	results = CheckStructure(root, dirs[:1])
	if results[0].Message != "admin_dashboard/uploads exists but is not a directory" {
		t.Fatalf("unexpected message: %q", results[0].Message)
	}
	if err := os.Remove(filepath.Join(root, "admin_dashboard/uploads")); err != nil {
		t.Fatal(err)
	}

	if err := os.MkdirAll(filepath.Join(root, "admin_dashboard/uploads/temp"), 0o755); err != nil {
		t.Fatal(err)
	}
	results = CheckStructure(root, dirs)
	if countStatus(results, StatusOK) != 2 {
		t.Fatalf("expected all OK, got %+v", results)
	}
}

func TestCheckConfigFiles(t *testing.T) {
	root := t.TempDir()
	files := []config.ConfigFile{{Template: "admin_dashboard/config.example.php", Destination: "admin_dashboard/config.php"}}

	results := CheckConfigFiles(root, files)
	if results[0].Status != StatusFail || results[0].Message != "Template missing: admin_dashboard/config.example.php" {
		t.Fatalf("expected template failure, got %+v", results[0])
	}

	testutil.WriteFile(t, root, "admin_dashboard/config.example.php", "<?php\n")
	results = CheckConfigFiles(root, files)
	if results[0].Status != StatusWarn {
		t.Fatalf("expected warning before install, got %+v", results[0])
	}

	testutil.WriteFile(t, root, "admin_dashboard/config.php", "<?php\n")
	results = CheckConfigFiles(root, files)
	if results[0].Status != StatusOK {
		t.Fatalf("expected OK after install, got %+v", results[0])
	}
}

func TestCheckSchema(t *testing.T) {
	root := t.TempDir()
	if r := CheckSchema(root, "database.sql"); r.Status != StatusFail {
		t.Fatalf("expected failure, got %+v", r)
	}
	testutil.WriteFile(t, root, "database.sql", "CREATE TABLE t (id INT);")
	if r := CheckSchema(root, "database.sql"); r.Status != StatusOK {
		t.Fatalf("expected OK, got %+v", r)
	}
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	cfg, err := config.Defaults()
	if err != nil {
		t.Fatal(err)
	}
	for _, dir := range cfg.Paths.Directories {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	testutil.WriteFile(t, root, "admin_dashboard/config.example.php", "<?php\n")
	testutil.WriteFile(t, root, "database.sql", "")

	probe := fakeProbe{version: "8.2.0", extensions: cfg.Runtime.Extensions}
	results := Run(context.Background(), root, cfg, probe)
	if HasFailure(results) {
		t.Fatalf("expected no failures, got %+v", results)
	}
	if countStatus(results, StatusWarn) != 1 {
		t.Fatalf("expected config warning, got %+v", results)
	}
	// runtime + 7 extensions + 3 dirs + 1 config + schema
	if len(results) != 13 {
		t.Fatalf("expected 13 results, got %d", len(results))
	}
}

func TestHasFailure(t *testing.T) {
	if HasFailure([]Result{{Status: StatusOK}, {Status: StatusWarn}}) {
		t.Fatal("warnings are not failures")
	}
	if !HasFailure([]Result{{Status: StatusOK}, {Status: StatusFail}}) {
		t.Fatal("expected failure")
	}
}
