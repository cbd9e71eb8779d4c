package main

import (
	"os"
	"path/filepath"
	"testing"

	"cadence/internal/services"
	"cadence/internal/testsupport"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, env.analysisDir)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, env, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, env, "config", "init", "--path", target); err == nil {
		t.Fatal("expected init to refuse overwriting")
	}
	if _, _, err := runCLI(t, env, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	env.configPath = target
	out, _, err = runCLI(t, env, "config", "validate")
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestInvalidConfigIsReported(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFile(t, env.configPath, "[beats]\nmode = \"chaos\"\n")

	_, _, err := runCLI(t, env, "config", "validate")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if code := services.ExitCode(err); code != services.ExitInvalid {
		t.Fatalf("expected invalid exit code, got %d", code)
	}

	testsupport.WriteFile(t, env.configPath, "[logging]\nlevel = \"error\"\n")
	if _, _, err := runCLI(t, env, "config", "validate"); err != nil {
		t.Fatalf("restored config should validate: %v", err)
	}
	_, _, err = runCLI(t, env, "--log-level", "loud", "config", "validate")
	if code := services.ExitCode(err); code != services.ExitInvalid {
		t.Fatalf("expected invalid exit code for unknown log level, got %d (%v)", code, err)
	}
}
