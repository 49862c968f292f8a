package model

import (
	"reflect"
	"testing"
)

func TestParseStreak(t *testing.T) {
	tests := map[string]struct {
		token    string
		expected *Streak
	}{
		"winning":        {token: "W3", expected: &Streak{Winning: true, Length: 3}},
		"losing":         {token: "L2", expected: &Streak{Winning: false, Length: 2}},
		"long streak":    {token: "W12", expected: &Streak{Winning: true, Length: 12}},
		"empty":          {token: "", expected: nil},
		"zero length":    {token: "W0", expected: nil},
		"lowercase":      {token: "w3", expected: nil},
		"no direction":   {token: "3", expected: nil},
		"no length":      {token: "W", expected: nil},
		"trailing junk":  {token: "W3x", expected: nil},
		"wrong alphabet": {token: "T5", expected: nil},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := ParseStreak(tc.token)
			if !reflect.DeepEqual(tc.expected, got) {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestFormatStreak(t *testing.T) {
	tests := map[string]struct {
		token    string
		expected string
	}{
		"winning":    {token: "W3", expected: "Won 3"},
		"losing":     {token: "L1", expected: "Lost 1"},
		"unparsable": {token: "hot", expected: "hot"},
		"empty":      {token: "", expected: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := FormatStreak(tc.token); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
