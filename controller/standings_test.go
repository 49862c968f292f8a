package controller

import (
	"reflect"
	"testing"

	"github.com/DCal661/league-of-misfits/model"
)

func TestBuildTeams(t *testing.T) {
	rosters := []model.Roster{
		{ID: 2, OwnerID: "222", Wins: 5, Losses: 2, PointsFor: 790.20, PointsAgainst: 805.00, Streak: "L1"},
		{ID: 1, OwnerID: "111", Wins: 5, Losses: 2, PointsFor: 812.55, PointsAgainst: 700.10, Streak: "W3"},
		{ID: 5, OwnerID: "999", Wins: 1, Losses: 6, PointsFor: 600.95, PointsAgainst: 820.35},
	}
	managers := map[string]managerInfo{
		"111": {name: "The Gridiron Gang", avatar: "abc123"},
		"222": {name: "benchwarmer", avatar: "none"},
	}

	teams := buildTeams(rosters, managers)
	if len(teams) != len(rosters) {
		t.Fatalf("expected one team per roster, got %d for %d rosters", len(teams), len(rosters))
	}

	// Enumeration order matches the roster order, no reordering here.
	expected := []model.Team{
		{Name: "benchwarmer", Avatar: "none", Wins: 5, Losses: 2, PointsFor: 790.20, PointsAgainst: 805.00, RosterID: 2, OwnerID: "222", Streak: "L1"},
		{Name: "The Gridiron Gang", Avatar: "abc123", Wins: 5, Losses: 2, PointsFor: 812.55, PointsAgainst: 700.10, RosterID: 1, OwnerID: "111", Streak: "W3"},
		{Name: "Team 5", Avatar: "none", Wins: 1, Losses: 6, PointsFor: 600.95, PointsAgainst: 820.35, RosterID: 5, OwnerID: "999"},
	}
	if !reflect.DeepEqual(expected, teams) {
		t.Errorf("teams were not as expected - actual: %v", teams)
	}
}

func TestRankTeams(t *testing.T) {
	teams := []model.Team{
		{Name: "C", Wins: 3, PointsFor: 700.00},
		{Name: "A", Wins: 5, PointsFor: 790.20},
		{Name: "B", Wins: 5, PointsFor: 812.55},
		{Name: "D", Wins: 1, PointsFor: 600.95},
	}

	ranked := rankTeams(teams)

	expectedOrder := []string{"B", "A", "C", "D"}
	for i, name := range expectedOrder {
		if ranked[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, ranked[i].Name)
		}
		if ranked[i].Rank != i+1 {
			t.Errorf("position %d: expected rank %d, got %d", i, i+1, ranked[i].Rank)
		}
	}
}

func TestRankTeams_fullPrecisionTiebreak(t *testing.T) {
	// The difference is in the hundredths, which the display truncates
	// away. Ranking still has to see it.
	teams := []model.Team{
		{Name: "A", Wins: 5, PointsFor: 812.51},
		{Name: "B", Wins: 5, PointsFor: 812.55},
	}

	ranked := rankTeams(teams)
	if ranked[0].Name != "B" {
		t.Errorf("expected B to rank first on the hundredths, got %s", ranked[0].Name)
	}
}

func TestRankTeams_stableOnExactTie(t *testing.T) {
	teams := []model.Team{
		{Name: "first", Wins: 3, PointsFor: 700.00},
		{Name: "second", Wins: 3, PointsFor: 700.00},
	}

	ranked := rankTeams(teams)
	if ranked[0].Name != "first" || ranked[1].Name != "second" {
		t.Errorf("exact ties must keep input order, got %s then %s", ranked[0].Name, ranked[1].Name)
	}
	if ranked[0].Rank != 1 || ranked[1].Rank != 2 {
		t.Errorf("ranks must stay dense on ties, got %d and %d", ranked[0].Rank, ranked[1].Rank)
	}
}

func TestRankTeams_inputUntouched(t *testing.T) {
	teams := []model.Team{
		{Name: "low", Wins: 1},
		{Name: "high", Wins: 9},
	}

	rankTeams(teams)
	if teams[0].Name != "low" || teams[0].Rank != 0 {
		t.Errorf("input slice was modified: %v", teams)
	}
}
