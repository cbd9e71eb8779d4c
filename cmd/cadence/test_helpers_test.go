package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cadence/internal/testsupport"
)

type cliTestEnv struct {
	configPath  string
	analysisDir string
	baseDir     string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	for _, key := range []string{"CADENCE_LOG_FORMAT", "CADENCE_LOG_LEVEL", "CADENCE_ANALYSIS_DIR"} {
		t.Setenv(key, "")
	}

	cfg := testsupport.NewConfig(t, testsupport.WithAnalysisDirs())
	configPath := filepath.Join(homeDir, ".config", "cadence", "config.toml")
	content := fmt.Sprintf("[logging]\nlevel = \"error\"\n\n[analysis]\ndir = %q\n", cfg.Analysis.Dir)
	testsupport.WriteFile(t, configPath, content)

	return &cliTestEnv{
		configPath:  configPath,
		analysisDir: cfg.Analysis.Dir,
		baseDir:     base,
	}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
