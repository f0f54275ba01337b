package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got < tc.expected-1e-9 || got > tc.expected+1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyDisabledStaysAtInitial(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})

	if d.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}
	if got := d.Level(1000, 1000); got != 0.5 {
		t.Errorf("Level() = %v, expected 0.5", got)
	}
}

func TestFallInterval(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 2.0},
	})

	tests := []struct {
		score    int
		expected int
	}{
		{0, 30},   // speed 1
		{50, 15},  // speed 2
		{100, 10}, // speed 3
	}
	for _, tc := range tests {
		if got := d.FallInterval(30, 5, tc.score, 0); got != tc.expected {
			t.Errorf("FallInterval(score=%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}

	if got := d.FallInterval(30, 12, 100, 0); got != 12 {
		t.Errorf("FallInterval should respect the minimum, got %d", got)
	}
	if got := d.FallInterval(1, 0, 100, 0); got != 1 {
		t.Errorf("FallInterval should never drop below 1, got %d", got)
	}
}
