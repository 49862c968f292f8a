package sleeper

import (
	"github.com/DCal661/league-of-misfits/model"
)

type sleeperState struct {
	Week         int    `json:"week"`
	Season       string `json:"season"`
	SeasonType   string `json:"season_type"`
	LeagueSeason string `json:"league_season"`
}

func (s *sleeperState) toSportState() *model.SportState {
	season := s.Season
	if s.LeagueSeason != "" {
		season = s.LeagueSeason
	}
	week := s.Week
	if week < 1 {
		// Pre-season state reports week 0
		week = 1
	}
	return &model.SportState{
		Week:   week,
		Season: season,
	}
}

type sleeperUser struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
}

func (u *sleeperUser) toUser() *model.User {
	return &model.User{
		ID:          u.UserID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Avatar:      u.Avatar,
	}
}

type sleeperRoster struct {
	RosterID int             `json:"roster_id"`
	OwnerID  string          `json:"owner_id"`
	Settings sleeperSettings `json:"settings"`
	Metadata *rosterMetadata `json:"metadata"`
}

type sleeperSettings struct {
	Wins               int `json:"wins"`
	Losses             int `json:"losses"`
	Fpts               int `json:"fpts"`
	FptsDecimal        int `json:"fpts_decimal"`
	FptsAgainst        int `json:"fpts_against"`
	FptsAgainstDecimal int `json:"fpts_against_decimal"`
}

type rosterMetadata struct {
	Streak string `json:"streak"`
}

func (r *sleeperRoster) toRoster() *model.Roster {
	roster := &model.Roster{
		ID:            r.RosterID,
		OwnerID:       r.OwnerID,
		Wins:          r.Settings.Wins,
		Losses:        r.Settings.Losses,
		PointsFor:     combinePoints(r.Settings.Fpts, r.Settings.FptsDecimal),
		PointsAgainst: combinePoints(r.Settings.FptsAgainst, r.Settings.FptsAgainstDecimal),
	}
	if r.Metadata != nil {
		roster.Streak = r.Metadata.Streak
	}
	return roster
}

// Sleeper splits point totals into a whole part and a hundredths part.
// The full-precision sum is what rankings compare on, rounding only ever
// happens at display time.
func combinePoints(whole, hundredths int) float64 {
	return float64(whole) + float64(hundredths)/100
}

type sleeperMatchup struct {
	RosterID  int     `json:"roster_id"`
	MatchupID *int    `json:"matchup_id"`
	Points    float64 `json:"points"`
}

func (m *sleeperMatchup) toScoreRow() *model.ScoreRow {
	row := &model.ScoreRow{
		RosterID: m.RosterID,
		Points:   m.Points,
	}
	// matchup_id is null for byes; 0 marks the row as unpaired.
	if m.MatchupID != nil {
		row.MatchupID = *m.MatchupID
	}
	return row
}
