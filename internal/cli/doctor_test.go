package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/mm-worker/internal/config"
	"github.com/spf13/cobra"
)

func TestNewDoctorCmd(t *testing.T) {
	cmd := newDoctorCmd(testLoader(t), nil)

	if cmd.Use != "doctor" {
		t.Errorf("expected Use to be 'doctor', got %q", cmd.Use)
	}

	if cmd.Flags().Lookup("require") == nil {
		t.Error("expected --require flag to be defined")
	}
}

func TestCheckGoVersion(t *testing.T) {
	check := checkGoVersion()
	if check.Status != "✓" || check.Error != nil {
		t.Fatalf("unexpected check: %#v", check)
	}
	if !strings.HasPrefix(check.Detail, "Version go") {
		t.Fatalf("unexpected detail %q", check.Detail)
	}
}

func TestCheckBinary(t *testing.T) {
	fake := &fakeExecutor{missing: map[string]bool{"pythia8": true}}

	ok := checkBinary("Binary mg5_aMC", "mg5_aMC", fake)
	if ok.Status != "✓" || ok.Error != nil {
		t.Fatalf("expected success, got %#v", ok)
	}

	missing := checkBinary("Binary pythia8", "pythia8", fake)
	if missing.Status != "✗" || missing.Error == nil {
		t.Fatalf("expected failure, got %#v", missing)
	}
}

func TestCheckConfiguration(t *testing.T) {
	valid := config.DefaultRuntimeConfig()
	if check := checkConfiguration(&valid); check.Error != nil {
		t.Fatalf("expected valid config: %v", check.Error)
	}

	invalid := config.DefaultRuntimeConfig()
	invalid.LogFormat = "xml"
	if check := checkConfiguration(&invalid); check.Error == nil || check.Status != "✗" {
		t.Fatalf("expected invalid config, got %#v", check)
	}
}

func TestCheckFolder(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.txt")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	tests := []struct {
		name       string
		path       string
		wantStatus string
		wantErr    bool
	}{
		{name: "existing directory", path: root, wantStatus: "✓"},
		{name: "missing directory", path: filepath.Join(root, "later"), wantStatus: "⊘"},
		{name: "regular file", path: file, wantStatus: "✗", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := checkFolder(tt.path)
			if check.Status != tt.wantStatus {
				t.Fatalf("expected status %s, got %s", tt.wantStatus, check.Status)
			}
			if (check.Error != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", check.Error)
			}
		})
	}

	if _, err := os.Stat(filepath.Join(root, "later")); !os.IsNotExist(err) {
		t.Fatal("doctor must not create folders")
	}
}

func TestCheckLogFile(t *testing.T) {
	root := t.TempDir()

	if check := checkLogFile(filepath.Join(root, "new.log")); check.Error != nil {
		t.Fatalf("missing log file is fine: %v", check.Error)
	}

	if check := checkLogFile(root); check.Error == nil {
		t.Fatal("directory as log file should fail")
	}
}

func TestPrintDoctorReport(t *testing.T) {
	cmd := &cobra.Command{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	printDoctorReport(cmd, []doctorCheck{
		{Name: "Go Runtime", Status: "✓", Detail: "Version go1.22"},
		{Name: "Shell", Status: "✗", Detail: "sh not found in PATH", Error: os.ErrNotExist},
	})

	if !strings.Contains(stdout.String(), "Running environment diagnostics...") {
		t.Fatalf("missing header: %s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "✓ Go Runtime:") {
		t.Fatalf("missing check line: %s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Error:") {
		t.Fatalf("errors should go to stderr: %s", stderr.String())
	}
}

func TestDoctorCmdPasses(t *testing.T) {
	folder := t.TempDir()
	cmd := newDoctorCmd(testLoader(t), &fakeExecutor{})
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--folders", folder, "--require", "mg5_aMC"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, stdout.String())
	}

	if !strings.Contains(stdout.String(), "All checks passed") {
		t.Fatalf("expected success line, got %s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Binary mg5_aMC") {
		t.Fatalf("expected binary check, got %s", stdout.String())
	}
}

func TestDoctorCmdFailsOnMissingBinary(t *testing.T) {
	cmd := newDoctorCmd(testLoader(t), &fakeExecutor{missing: map[string]bool{"delphes": true}})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--require", "delphes"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected doctor to fail")
	}
}

func TestRunDoctorChecksIncludesLogFile(t *testing.T) {
	cfg := config.DefaultRuntimeConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "run.log")

	checks := runDoctorChecks(&fakeExecutor{}, &cfg, nil)
	if checks[len(checks)-1].Name != "Log File" {
		t.Fatalf("expected log file check last, got %#v", checks)
	}
}
