package model

// ScoreRow is a single roster's scoring line for one week. MatchupID
// groups the two rosters that played each other. A MatchupID of 0 means
// the platform sent no pairing for the row (bye or unscheduled slot) and
// the row must never be grouped into a matchup.
type ScoreRow struct {
	RosterID  int
	MatchupID int
	Points    float64
}

// Matchup is a reconstructed head-to-head pair. Team1 is always the
// side with the lower roster id.
type Matchup struct {
	Team1  string
	Score1 float64
	Team2  string
	Score2 float64
}
