package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestWritePHPStub(t *testing.T) {
	dir := t.TempDir()
	path := WritePHPStub(t, dir, "8.2.1", []string{"PDO", "pdo_mysql"})

	out, err := exec.Command(path, "-r", "echo PHP_VERSION;").Output()
	if err != nil {
		t.Fatalf("run stub: %v", err)
	}
	if string(out) != "8.2.1" {
		t.Fatalf("unexpected version output %q", string(out))
	}

	out, err = exec.Command(path, "-m").Output()
	if err != nil {
		t.Fatalf("run stub: %v", err)
	}
	if !strings.Contains(string(out), "[PHP Modules]\nPDO\npdo_mysql\n") {
		t.Fatalf("unexpected module output %q", string(out))
	}
}

func TestWriteStubWithExit(t *testing.T) {
	path := WriteStubWithExit(t, t.TempDir(), "php", 3)
	err := exec.Command(path).Run()
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected exit error, got %v", err)
	}
	if exitErr.ExitCode() != 3 {
		t.Fatalf("expected exit code 3, got %d", exitErr.ExitCode())
	}
}

func TestWriteFileCreatesParents(t *testing.T) {
	root := t.TempDir()
	path := WriteFile(t, root, "admin_dashboard/config.example.php", "<?php\n")
	if path != filepath.Join(root, "admin_dashboard", "config.example.php") {
		t.Fatalf("unexpected path %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "<?php\n" {
		t.Fatalf("unexpected content %q", string(data))
	}
}

func TestWithWorkingDir(t *testing.T) {
	dir := t.TempDir()
	before, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	WithWorkingDir(t, dir, func() {
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatalf("getwd: %v", err)
		}
		resolved, _ := filepath.EvalSymlinks(dir)
		actual, _ := filepath.EvalSymlinks(cwd)
		if resolved != actual {
			t.Fatalf("expected cwd %s, got %s", resolved, actual)
		}
	})
	after, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if after != before {
		t.Fatalf("expected cwd restored to %s, got %s", before, after)
	}
}
