package controller

import (
	"testing"

	"github.com/DCal661/league-of-misfits/model"
)

func TestAwardWindow(t *testing.T) {
	tests := map[string]struct {
		currentWeek int
		first, last int
	}{
		"mid-season":   {currentWeek: 7, first: 5, last: 7},
		"full window":  {currentWeek: 3, first: 1, last: 3},
		"week two":     {currentWeek: 2, first: 1, last: 2},
		"week one":     {currentWeek: 1, first: 1, last: 1},
		"pre-season":   {currentWeek: 0, first: 1, last: 1},
		"late season":  {currentWeek: 17, first: 15, last: 17},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			first, last := awardWindow(tc.currentWeek)
			if first != tc.first || last != tc.last {
				t.Errorf("expected [%d, %d], got [%d, %d]", tc.first, tc.last, first, last)
			}
		})
	}
}

func TestWeeklyAwards(t *testing.T) {
	names := map[int]string{1: "A", 2: "B", 3: "C"}
	rows := []model.ScoreRow{
		{RosterID: 1, MatchupID: 1, Points: 150.5},
		{RosterID: 2, MatchupID: 1, Points: 80.2},
		{RosterID: 3, MatchupID: 2, Points: 95.0},
	}

	got := weeklyAwards(6, rows, names)
	if got == nil {
		t.Fatal("awards should not have been nil")
	}

	if got.Week != 6 {
		t.Errorf("expected week 6, got %d", got.Week)
	}
	if got.TopScorer.Team != "A" || got.TopScorer.Points != 150.5 {
		t.Errorf("top scorer not as expected: %v", got.TopScorer)
	}
	if got.LowScorer.Team != "B" || got.LowScorer.Points != 80.2 {
		t.Errorf("low scorer not as expected: %v", got.LowScorer)
	}
	if got.Bust.Team != "B" || got.Bust.Points != 80.2 {
		t.Errorf("bust not as expected: %v", got.Bust)
	}
	// avg is (150.5+80.2+95.0)/3, the gap below it renders to one decimal
	if got.Bust.Detail != "28.4 points below the weekly average" {
		t.Errorf("bust detail not as expected: %q", got.Bust.Detail)
	}
}

func TestWeeklyAwards_zeroScoresExcluded(t *testing.T) {
	names := map[int]string{1: "A", 2: "B", 5: "E"}
	rows := []model.ScoreRow{
		{RosterID: 1, MatchupID: 1, Points: 112.34},
		{RosterID: 2, MatchupID: 1, Points: 98.5},
		{RosterID: 5, MatchupID: 0, Points: 0}, // bye, must not become the low scorer
	}

	got := weeklyAwards(7, rows, names)
	if got == nil {
		t.Fatal("awards should not have been nil")
	}
	if got.LowScorer.Team != "B" {
		t.Errorf("expected B as low scorer, got %s", got.LowScorer.Team)
	}
}

func TestWeeklyAwards_tiesGoToEarliestRow(t *testing.T) {
	names := map[int]string{1: "first", 2: "second"}
	rows := []model.ScoreRow{
		{RosterID: 1, MatchupID: 1, Points: 100.0},
		{RosterID: 2, MatchupID: 1, Points: 100.0},
	}

	got := weeklyAwards(3, rows, names)
	if got == nil {
		t.Fatal("awards should not have been nil")
	}
	if got.TopScorer.Team != "first" {
		t.Errorf("top scorer tie should go to the earliest row, got %s", got.TopScorer.Team)
	}
	if got.LowScorer.Team != "first" {
		t.Errorf("low scorer tie should go to the earliest row, got %s", got.LowScorer.Team)
	}
}

func TestWeeklyAwards_noQualifyingScores(t *testing.T) {
	rows := []model.ScoreRow{
		{RosterID: 1, MatchupID: 0, Points: 0},
	}

	if got := weeklyAwards(1, rows, map[int]string{}); got != nil {
		t.Errorf("expected nil for an unplayed week, got %v", got)
	}
}
