package model

import "time"

var SourceSleeper = "sleeper"
var SourceBackend = "backend"

// User is a league member as reported by the platform.
type User struct {
	ID          string
	Username    string
	DisplayName string
	Avatar      string
}

// Roster is one team's season record. Everything here comes straight
// from the platform and is rebuilt wholesale on every refresh.
type Roster struct {
	ID            int
	OwnerID       string
	Wins          int
	Losses        int
	PointsFor     float64
	PointsAgainst float64
	Streak        string
}

// Team is the join of a Roster and its owning User. Rank is assigned by
// the standings ranker, every other field is copied from the source.
type Team struct {
	Name          string  `json:"name"`
	Avatar        string  `json:"avatar"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
	RosterID      int     `json:"roster_id"`
	OwnerID       string  `json:"owner_id"`
	Streak        string  `json:"streak"`
	Rank          int     `json:"rank"`
}

// SportState is the current point in the season.
type SportState struct {
	Week   int
	Season string
}

// Snapshot is one complete build of derived league data. A refresh
// replaces the whole snapshot, readers never see a partial one.
type Snapshot struct {
	State     SportState
	Teams     []Team
	Matchups  []Matchup
	Trend     []TrendPoint
	Awards    []WeeklyAwards
	FetchedAt time.Time
}
