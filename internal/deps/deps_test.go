package deps

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordmill/internal/config"
	"wordmill/internal/testsupport"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Unset", Command: "  "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatal("expected detail message for missing binary")
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}

	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("unexpected status for unset command: %#v", results[2])
	}
}

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()

	result := CheckDirectoryAccess("Output directory", dir)
	if !result.Passed {
		t.Fatalf("expected accessible directory to pass, got %#v", result)
	}

	missing := CheckDirectoryAccess("Output directory", filepath.Join(dir, "missing"))
	if missing.Passed {
		t.Fatal("expected missing directory to fail")
	}
	if !strings.Contains(missing.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %q", missing.Detail)
	}

	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	notDir := CheckDirectoryAccess("Output directory", file)
	if notDir.Passed {
		t.Fatal("expected plain file to fail")
	}
	if !strings.Contains(notDir.Detail, "is not a directory") {
		t.Fatalf("unexpected detail: %q", notDir.Detail)
	}
}

func TestCheckSystemDepsMarksRendererOptionalWhenDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.WordCloud.Enabled = false

	results := CheckSystemDeps(&cfg)
	if len(results) != 1 {
		t.Fatalf("expected only the renderer requirement, got %#v", results)
	}
	if results[0].Name != "Word-cloud renderer" || !results[0].Optional {
		t.Fatalf("unexpected requirement: %#v", results[0])
	}
}

func TestCheckSystemDepsFindsStubbedRenderer(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithWordCloud("wordmill-test-renderer"),
		testsupport.WithStubbedBinaries("wordmill-test-renderer"))

	results := CheckSystemDeps(cfg)
	if len(results) != 1 {
		t.Fatalf("expected only the renderer requirement, got %#v", results)
	}
	if !results[0].Available {
		t.Fatalf("expected stubbed renderer on PATH to be found: %#v", results[0])
	}
	if results[0].Optional {
		t.Fatal("expected renderer to be required when word cloud is enabled")
	}
}

func TestCheckSystemDepsIncludesViewerWhenDisplaying(t *testing.T) {
	cfg := config.Default()
	cfg.WordCloud.Enabled = true
	cfg.WordCloud.Display = true

	results := CheckSystemDeps(&cfg)
	if len(results) != 2 {
		t.Fatalf("expected renderer and viewer requirements, got %#v", results)
	}
	if results[0].Optional {
		t.Fatal("expected renderer to be required when word cloud is enabled")
	}
	if results[1].Name != "Image viewer" || !results[1].Optional {
		t.Fatalf("unexpected viewer requirement: %#v", results[1])
	}
}
