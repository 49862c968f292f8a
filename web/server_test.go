package web

import "testing"

func TestPointsFormatter(t *testing.T) {
	tests := map[string]struct {
		points   float64
		expected string
	}{
		"truncates not rounds": {points: 101.29, expected: "101.2"},
		"one decimal":          {points: 98.5, expected: "98.5"},
		"whole number":         {points: 700, expected: "700.0"},
		"zero":                 {points: 0, expected: "0.0"},
		"high precision":       {points: 812.5599, expected: "812.5"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := pointsFormatter(tc.points); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestRecordFormatter(t *testing.T) {
	if got := recordFormatter(5, 2); got != "5-2" {
		t.Errorf("expected 5-2, got %q", got)
	}
	if got := recordFormatter(0, 0); got != "0-0" {
		t.Errorf("expected 0-0, got %q", got)
	}
}

func TestStreakFormatter(t *testing.T) {
	tests := map[string]struct {
		token    string
		expected string
	}{
		"winning": {token: "W3", expected: "Won 3"},
		"losing":  {token: "L2", expected: "Lost 2"},
		"missing": {token: "", expected: "-"},
		"raw":     {token: "hot", expected: "hot"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := streakFormatter(tc.token); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
