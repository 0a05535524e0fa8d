package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Natwar589/chatkit-implementation/internal/console"
)

// fakeEnv returns a lookup over a fixed mapping, standing in for the live
// process environment.
func fakeEnv(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func newTestReporter(dir string, vars map[string]string) (*Reporter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	r := &Reporter{
		Out:         out,
		LookupEnv:   fakeEnv(vars),
		EnvFile:     filepath.Join(dir, ".env"),
		ExampleFile: filepath.Join(dir, ".env.example"),
		Vars:        Known(),
	}
	return r, out
}

func TestRunEmptyFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("  \n\t\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r, out := newTestReporter(dir, nil)
	r.Run(context.Background())

	got := out.String()
	if !strings.Contains(got, "exists but is empty") {
		t.Errorf("expected empty-file notice, got:\n%s", got)
	}
	if strings.Contains(got, "has content") {
		t.Errorf("empty file must not report content, got:\n%s", got)
	}
}

func TestRunFileWithContent(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("VITE_BACKEND_URL=http://localhost:8000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r, out := newTestReporter(dir, nil)
	r.Run(context.Background())

	got := out.String()
	if !strings.Contains(got, "found and has content") {
		t.Errorf("expected has-content notice, got:\n%s", got)
	}
	if strings.Contains(got, "exists but is empty") {
		t.Errorf("file with content must not report empty, got:\n%s", got)
	}
}

func TestRunMissingFileNoExample(t *testing.T) {
	dir := t.TempDir()

	r, out := newTestReporter(dir, nil)
	r.Run(context.Background())

	got := out.String()
	if !strings.Contains(got, "file found") || !strings.Contains(got, "No ") {
		t.Errorf("expected no-file notice, got:\n%s", got)
	}
	if strings.Contains(got, "cp ") {
		t.Errorf("no example file, must not suggest copy, got:\n%s", got)
	}
}

func TestRunMissingFileWithExample(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env.example"), []byte("VITE_BACKEND_URL=\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r, out := newTestReporter(dir, nil)
	r.Run(context.Background())

	got := out.String()
	want := "cp " + r.ExampleFile + " " + r.EnvFile
	if !strings.Contains(got, want) {
		t.Errorf("expected copy suggestion %q, got:\n%s", want, got)
	}
}

func TestRunVariableStatus(t *testing.T) {
	dir := t.TempDir()
	vars := map[string]string{
		"VITE_CHATKIT_API_URL": "https://api.example.com/chatkit",
		"VITE_BACKEND_URL":     "http://127.0.0.1:9000",
	}

	r, out := newTestReporter(dir, vars)
	r.Run(context.Background())
	got := out.String()

	// Set variables appear with their literal values
	for name, value := range vars {
		if !strings.Contains(got, name) {
			t.Errorf("output missing variable name %q", name)
		}
		if !strings.Contains(got, value) {
			t.Errorf("output missing value %q for %q", value, name)
		}
	}

	// Unset variables carry a not-set marker and no value. Names are padded
	// to the longest name in the table.
	nameWidth := 0
	for _, v := range Known() {
		if len(v.Name) > nameWidth {
			nameWidth = len(v.Name)
		}
	}
	pad := func(name string) string {
		return name + strings.Repeat(" ", nameWidth-len(name))
	}
	if want := "  " + pad("VITE_FACTS_API_URL") + " (not set, default applies)"; !strings.Contains(got, want) {
		t.Errorf("expected line %q, got:\n%s", want, got)
	}
	if want := "  " + pad("VITE_CHATKIT_API_DOMAIN_KEY") + " (not set)"; !strings.Contains(got, want) {
		t.Errorf("expected line %q, got:\n%s", want, got)
	}
}

func TestRunGuidanceAlwaysPrinted(t *testing.T) {
	dir := t.TempDir()
	r, out := newTestReporter(dir, nil)
	r.Run(context.Background())
	got := out.String()

	for _, want := range []string{
		"Local development:",
		"Production deployment:",
		"To start the frontend:",
		"npm install",
		"npm run dev",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("guidance output missing %q", want)
		}
	}
}

func TestRunMutatesNothing(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("A=1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	snapshot := func() map[string]int64 {
		m := map[string]int64{}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			info, err := e.Info()
			if err != nil {
				t.Fatal(err)
			}
			m[e.Name()] = info.Size()
		}
		return m
	}

	before := snapshot()
	r, _ := newTestReporter(dir, nil)
	r.Verbose = true
	r.Run(context.Background())
	after := snapshot()

	if len(before) != len(after) {
		t.Fatalf("file count changed: before %v, after %v", before, after)
	}
	for name, size := range before {
		if after[name] != size {
			t.Errorf("file %q changed size: %d -> %d", name, size, after[name])
		}
	}
}

func TestRunForcedColorNonTTY(t *testing.T) {
	// Color on must emit ANSI escapes even though the output is a buffer,
	// not a terminal. This is what ui.color = "always" relies on.
	oldTTY := console.SetTTY(false)
	defer console.SetTTY(oldTTY)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("A=1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r, out := newTestReporter(dir, nil)
	r.Color = true
	r.Run(context.Background())

	got := out.String()
	if !strings.Contains(got, "\033[") {
		t.Errorf("forced color produced no ANSI escapes:\n%s", got)
	}
	if strings.Contains(got, "{{_") || strings.Contains(got, "{{|") {
		t.Errorf("forced color left unrendered tags:\n%s", got)
	}
}

func TestRunUnreadableFile(t *testing.T) {
	// A directory at the .env path makes the read fail without the file
	// being missing. The report must warn and still finish.
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".env"), 0755); err != nil {
		t.Fatal(err)
	}

	r, out := newTestReporter(dir, nil)
	r.Run(context.Background())

	got := out.String()
	if !strings.Contains(got, "Could not read") {
		t.Errorf("expected unreadable-file warning, got:\n%s", got)
	}
	if !strings.Contains(got, "To start the frontend:") {
		t.Errorf("report stopped before guidance, got:\n%s", got)
	}
}

func TestRunZeroSetup(t *testing.T) {
	// No files, no env vars: the report still completes.
	dir := t.TempDir()
	r, out := newTestReporter(dir, nil)
	r.Run(context.Background())
	if out.Len() == 0 {
		t.Error("expected report output with zero setup")
	}
}

func TestRunVerboseKeys(t *testing.T) {
	dir := t.TempDir()
	content := "VITE_BACKEND_URL=http://127.0.0.1:8000\nEXTRA=1\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r, out := newTestReporter(dir, nil)
	r.Verbose = true
	r.Run(context.Background())
	got := out.String()

	if !strings.Contains(got, "Keys defined in") {
		t.Errorf("expected key listing header, got:\n%s", got)
	}
	if !strings.Contains(got, "EXTRA") {
		t.Errorf("expected EXTRA key in listing, got:\n%s", got)
	}
	if !strings.Contains(got, "VITE_CHATKIT_API_URL not defined in file") {
		t.Errorf("expected missing-known-var note, got:\n%s", got)
	}
}
