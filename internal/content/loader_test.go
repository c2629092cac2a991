package content

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, data string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "scenario.yaml", `
passwords:
  - code: test_code
    target_sector: power
    reduction_percent: 15
    one_time: true
missions:
  - id: keypad
    name: Keypad Puzzle
    adjustment_type: single
    target_sector: internet
    success_reduction: 20
challenges:
  - id: custom_riddle
    type: riddle
    question: "What gets wetter as it dries?"
    accepted_answers:
      - towel
      - a towel
    difficulty: easy
    reward_type: time_bonus
    reward_amount: 60
    penalty_amount: 5
`)

	// Non-YAML files are ignored.
	writeFile(t, dir, "notes.txt", "not yaml")

	pack, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}

	if len(pack.Passwords) != 1 {
		t.Fatalf("expected 1 password, got %d", len(pack.Passwords))
	}
	if pack.Passwords[0].Code != "TEST_CODE" {
		t.Errorf("password code should be normalized to uppercase, got %q", pack.Passwords[0].Code)
	}
	if !pack.Passwords[0].OneTime {
		t.Error("one_time flag not parsed")
	}

	if len(pack.Missions) != 1 {
		t.Fatalf("expected 1 mission, got %d", len(pack.Missions))
	}
	if pack.Missions[0].SuccessReduction != 20 {
		t.Errorf("success_reduction not parsed, got %.1f", pack.Missions[0].SuccessReduction)
	}

	if len(pack.Challenges) != 1 {
		t.Fatalf("expected 1 challenge, got %d", len(pack.Challenges))
	}
	if len(pack.Challenges[0].AcceptedAnswers) != 2 {
		t.Errorf("accepted_answers not parsed, got %v", pack.Challenges[0].AcceptedAnswers)
	}
}

func TestLoadDirSkipsInvalid(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "broken.yaml", "passwords: [unclosed")
	writeFile(t, dir, "partial.yaml", `
passwords:
  - code: ""
  - code: good_code
    reduction_percent: 10
challenges:
  - id: missing_answers
    question: "no answers"
missions:
  - id: ""
    name: "nameless"
`)

	pack, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir should not fail on bad files: %v", err)
	}

	if len(pack.Passwords) != 1 || pack.Passwords[0].Code != "GOOD_CODE" {
		t.Errorf("expected only the valid password, got %+v", pack.Passwords)
	}
	if len(pack.Challenges) != 0 {
		t.Errorf("challenge without answers should be skipped, got %d", len(pack.Challenges))
	}
	if len(pack.Missions) != 0 {
		t.Errorf("mission without id should be skipped, got %d", len(pack.Missions))
	}
}

func TestLoadDirMissing(t *testing.T) {
	pack, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing directory should not error: %v", err)
	}
	if len(pack.Passwords)+len(pack.Missions)+len(pack.Challenges) != 0 {
		t.Error("missing directory should produce an empty pack")
	}
}
