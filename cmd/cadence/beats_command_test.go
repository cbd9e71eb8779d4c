package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"cadence/internal/analysis"
	"cadence/internal/composer"
	"cadence/internal/services"
	"cadence/internal/testsupport"
)

func writeAnalysis(t *testing.T, env *cliTestEnv, id string, result analysis.Result) string {
	t.Helper()
	path := filepath.Join(env.analysisDir, id+".json")
	testsupport.WriteJSON(t, path, result)
	return path
}

func alternatingAnalysis() analysis.Result {
	return analysis.Result{
		Analysis:          testsupport.Events(0.9, 0.1, 0.9, 0.1, 0.9, 0.1, 0.9, 0.1, 0.9, 0.1),
		DurationInSeconds: 10,
	}
}

func TestBeatsCommandRendersTables(t *testing.T) {
	env := setupCLITestEnv(t)
	writeAnalysis(t, env, "track", alternatingAnalysis())

	out, _, err := runCLI(t, env, "beats", "track", "--max", "4")
	if err != nil {
		t.Fatalf("beats: %v", err)
	}
	requireContains(t, out, "[OK]")
	requireContains(t, out, "4 beats over 10.000s (impact mode)")
	requireContains(t, out, "Clips")
	requireContains(t, out, "Opens on")
	requireContains(t, out, "run ")
}

func TestBeatsCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeAnalysis(t, env, "track", alternatingAnalysis())

	for _, arg := range []string{"track", path} {
		out, _, err := runCLI(t, env, "--json", "beats", arg, "--max", "4", "--overlap", "0.5")
		if err != nil {
			t.Fatalf("beats %s: %v", arg, err)
		}
		var comp composer.BeatComposition
		if err := json.Unmarshal([]byte(out), &comp); err != nil {
			t.Fatalf("decode beats output: %v\n%s", err, out)
		}
		if len(comp.Beats) != 4 || comp.Window != 10 || comp.Empty {
			t.Fatalf("unexpected composition: %+v", comp)
		}
		for _, b := range comp.Beats {
			if b.Intensity != 0.9 {
				t.Fatalf("unexpected low-intensity beat at %v", b.Timestamp)
			}
		}
		if len(comp.Clips) == 0 {
			t.Fatal("expected clip windows")
		}
	}
}

func TestBeatsCommandFlagsOverrideConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	otherDir := filepath.Join(env.baseDir, "other")
	testsupport.WriteJSON(t, filepath.Join(otherDir, "song.json"), alternatingAnalysis())

	out, _, err := runCLI(t, env, "--json", "beats", "song", "--analysis-dir", otherDir,
		"--mode", "random", "--seed", "3", "--max", "3", "--min-gap", "2", "--window", "8")
	if err != nil {
		t.Fatalf("beats: %v", err)
	}
	var comp composer.BeatComposition
	if err := json.Unmarshal([]byte(out), &comp); err != nil {
		t.Fatalf("decode beats output: %v", err)
	}
	if comp.Mode != "random" || comp.Window != 8 {
		t.Fatalf("flags not applied: %+v", comp)
	}
	if len(comp.Beats) > 3 {
		t.Fatalf("expected at most 3 beats, got %d", len(comp.Beats))
	}
	for i := 1; i < len(comp.Beats); i++ {
		if comp.Beats[i].Timestamp-comp.Beats[i-1].Timestamp < 2 {
			t.Fatalf("beats closer than --min-gap: %+v", comp.Beats)
		}
	}
}

func TestBeatsCommandEmptyAnalysisWarns(t *testing.T) {
	env := setupCLITestEnv(t)
	writeAnalysis(t, env, "silence", analysis.Result{Analysis: []analysis.Event{}})

	out, _, err := runCLI(t, env, "beats", "silence")
	if err != nil {
		t.Fatalf("beats: %v", err)
	}
	requireContains(t, out, "[WARN]")
	requireContains(t, out, "no beat-synced cuts: analysis has no events")
}

func TestBeatsCommandMissingAnalysis(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "beats", "missing")
	if err != nil {
		t.Fatalf("missing analysis should degrade without error, got %v", err)
	}
	requireContains(t, out, "[WARN]")
	requireContains(t, out, "no beat-synced cuts")

	_, _, err = runCLI(t, env, "beats", "missing", "--strict")
	if err == nil {
		t.Fatal("expected error with --strict")
	}
	if code := services.ExitCode(err); code != services.ExitNotFound {
		t.Fatalf("expected not-found exit code, got %d (%v)", code, err)
	}
}

func TestBeatsCommandRejectsUnknownMode(t *testing.T) {
	env := setupCLITestEnv(t)
	writeAnalysis(t, env, "track", alternatingAnalysis())

	_, _, err := runCLI(t, env, "beats", "track", "--mode", "chaos")
	if err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if code := services.ExitCode(err); code != services.ExitInvalid {
		t.Fatalf("expected invalid exit code, got %d", code)
	}
}
