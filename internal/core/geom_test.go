package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 1, 38, 5},   // within range
		{0, 1, 38, 1},   // below min
		{39, 1, 38, 38}, // above max
		{1, 1, 38, 1},   // at min
		{38, 1, 38, 38}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		want  Color
		found bool
	}{
		{"yellow", ColorYellow, true},
		{" Magenta ", ColorMagenta, true},
		{"BRIGHT_CYAN", ColorBrightCyan, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.name)
		if got != tc.want || ok != tc.found {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.name, got, ok, tc.want, tc.found)
		}
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		kind EventKind
		want Cue
	}{
		{EventShot, CueShoot},
		{EventHit, CueHit},
		{EventLifeLost, CueLifeLost},
		{EventGameOver, CueLifeLost},
		{EventKill, CueNone},
		{EventEscaped, CueNone},
	}

	for _, tc := range tests {
		if got := CueFor(tc.kind); got != tc.want {
			t.Errorf("CueFor(%v) = %v, expected %v", tc.kind, got, tc.want)
		}
	}
}
