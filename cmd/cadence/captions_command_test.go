package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"cadence/internal/captions"
	"cadence/internal/composer"
	"cadence/internal/services"
	"cadence/internal/testsupport"
)

func writeTranscript(t *testing.T, env *cliTestEnv) string {
	t.Helper()
	path := filepath.Join(env.baseDir, "transcript.json")
	testsupport.WriteJSON(t, path, []captions.Caption{
		testsupport.Caption(testsupport.Word("first", 0, 2), testsupport.Word("line", 2, 5)),
		testsupport.Caption(testsupport.Word("second", 7, 10), testsupport.Word("line", 10, 12)),
	})
	return path
}

func TestCaptionsCommandRendersTable(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeTranscript(t, env)

	out, _, err := runCLI(t, env, "captions", path, "--no-gaps", "--no-gaps-max", "3")
	if err != nil {
		t.Fatalf("captions: %v", err)
	}
	requireContains(t, out, "[line]")
	requireContains(t, out, "[second]")
	requireContains(t, out, "+2.000s")
	requireContains(t, out, "2 captions")
	requireContains(t, out, "1 extended")
}

func TestCaptionsCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeTranscript(t, env)

	out, _, err := runCLI(t, env, "--json", "captions", path, "--max-lines", "1")
	if err != nil {
		t.Fatalf("captions: %v", err)
	}
	var comp composer.CaptionComposition
	if err := json.Unmarshal([]byte(out), &comp); err != nil {
		t.Fatalf("decode captions output: %v\n%s", err, out)
	}
	if len(comp.Captions) != 2 || comp.Parts != 2 {
		t.Fatalf("expected one part per caption, got %+v", comp)
	}
	if comp.Extended != 0 {
		t.Fatalf("gap closing should be off by default, got %d", comp.Extended)
	}
	if comp.Highlighted != 2 {
		t.Fatalf("expected one highlight per caption, got %d", comp.Highlighted)
	}
}

func TestCaptionsCommandErrors(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "captions", filepath.Join(env.baseDir, "absent.json"))
	if code := services.ExitCode(err); code != services.ExitNotFound {
		t.Fatalf("expected not-found exit code, got %d (%v)", code, err)
	}

	bad := filepath.Join(env.baseDir, "bad.json")
	testsupport.WriteFile(t, bad, `{"captions": [{"text": "x", "absoluteStart": -1}]}`)
	_, _, err = runCLI(t, env, "captions", bad)
	if code := services.ExitCode(err); code != services.ExitInvalid {
		t.Fatalf("expected invalid exit code, got %d (%v)", code, err)
	}
}
