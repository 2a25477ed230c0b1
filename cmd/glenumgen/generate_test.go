package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/james4k/go-glenum/internal/config"
	"github.com/james4k/go-glenum/internal/logger"
)

func writeConfig(t *testing.T, out string) string {
	t.Helper()
	tables, err := filepath.Abs(filepath.Join("..", "..", "tables"))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	src := "import: github.com/james4k/go-glenum\n" +
		"apis:\n" +
		"  - {name: gl, prefix: GL_, tables: " + filepath.Join(tables, "gl") + ", output: " + filepath.Join(out, "gl") + "}\n" +
		"  - {name: egl, prefix: EGL_, tables: " + filepath.Join(tables, "egl") + ", output: " + filepath.Join(out, "egl") + "}\n"
	path := filepath.Join(dir, "glenumgen.yaml")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunWritesPackages(t *testing.T) {
	out := t.TempDir()
	cfg := writeConfig(t, out)
	var logs bytes.Buffer
	log := logger.New(logger.Config{Output: &logs})

	if err := run(context.Background(), log, options{config: cfg, apis: []string{"egl"}}); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"enums.go", "enum_names.go", "enum_names_stub.go", "enum_ranges.go", "enum_ranges_stub.go"} {
		b, err := os.ReadFile(filepath.Join(out, "egl", name))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Contains(b, []byte("package egl")) {
			t.Errorf("%s: wrong package", name)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "gl")); !os.IsNotExist(err) {
		t.Error("gl generated although only egl was requested")
	}
	if !strings.Contains(logs.String(), "wrote") {
		t.Errorf("missing progress logs: %q", logs.String())
	}

	// A second run leaves the files untouched.
	logs.Reset()
	if err := run(context.Background(), log, options{config: cfg, apis: []string{"egl"}}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(logs.String(), "wrote") {
		t.Errorf("unchanged files rewritten: %q", logs.String())
	}
}

func TestRunDryRun(t *testing.T) {
	out := t.TempDir()
	cfg := writeConfig(t, out)
	var logs bytes.Buffer
	if err := run(context.Background(), logger.New(logger.Config{Output: &logs}), options{config: cfg, dryRun: true}); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("dry run wrote %d entries", len(entries))
	}
	if !strings.Contains(logs.String(), "would write") {
		t.Errorf("missing dry run logs: %q", logs.String())
	}
}

func TestRunUnknownAPI(t *testing.T) {
	cfg := writeConfig(t, t.TempDir())
	err := run(context.Background(), logger.New(logger.Config{Output: &bytes.Buffer{}}), options{config: cfg, apis: []string{"vk"}})
	if err == nil || !strings.Contains(err.Error(), `api "vk" is not configured`) {
		t.Errorf("unexpected error %v", err)
	}
}

// The checked in gl and egl packages must match what the tables render to.
func TestRepositoryUpToDate(t *testing.T) {
	cfg, err := config.Load(filepath.Join("..", "..", config.DefaultFile))
	if err != nil {
		t.Fatal(err)
	}
	log := logger.New(logger.Config{Output: &bytes.Buffer{}})
	for _, a := range cfg.APIs {
		files, err := render(log, cfg, a)
		if err != nil {
			t.Fatalf("%s: %v", a.Name, err)
		}
		for _, f := range files {
			path := filepath.Join(cfg.Path(a.Output), f.Name)
			old, err := os.ReadFile(path)
			if err != nil {
				t.Errorf("%s: %v", a.Name, err)
				continue
			}
			if diff := cmp.Diff(string(f.Content), string(old)); diff != "" {
				t.Errorf("%s is stale, run go generate ./... (-want +got):\n%s", path, diff)
			}
		}
	}
}
