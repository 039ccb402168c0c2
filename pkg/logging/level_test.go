package logging

import (
	"testing"
)

// TestNameToLevel tests conversion of level names to levels.
func TestNameToLevel(t *testing.T) {
	// Define test cases.
	testCases := []struct {
		name     string
		expected Level
		valid    bool
	}{
		{"disabled", LevelDisabled, true},
		{"error", LevelError, true},
		{"warn", LevelWarn, true},
		{"warning", LevelWarn, true},
		{"info", LevelInfo, true},
		{"debug", LevelDebug, true},
		{"trace", LevelTrace, true},
		{" DEBUG ", LevelDebug, true},
		{"", LevelDisabled, false},
		{"verbose", LevelDisabled, false},
	}

	// Process test cases.
	for _, testCase := range testCases {
		level, valid := NameToLevel(testCase.name)
		if valid != testCase.valid {
			t.Errorf("validity mismatch for %q: %t != %t", testCase.name, valid, testCase.valid)
		} else if level != testCase.expected {
			t.Errorf("level mismatch for %q: %s != %s", testCase.name, level, testCase.expected)
		}
	}
}

// TestLevelNameRoundTrip tests that every level's name converts back to the
// same level.
func TestLevelNameRoundTrip(t *testing.T) {
	for level := LevelDisabled; level <= LevelTrace; level++ {
		if converted, ok := NameToLevel(level.String()); !ok {
			t.Errorf("level name %q not recognized", level)
		} else if converted != level {
			t.Errorf("level %q converted to %q", level, converted)
		}
	}
}

// TestLevelStringUnknown tests that out-of-range levels have a placeholder
// name.
func TestLevelStringUnknown(t *testing.T) {
	if name := (LevelTrace + 1).String(); name != "unknown" {
		t.Error("unexpected name for out-of-range level:", name)
	}
}
