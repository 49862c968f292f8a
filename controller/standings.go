package controller

import (
	"slices"

	"github.com/DCal661/league-of-misfits/model"
)

// buildTeams joins every roster with its resolved owner, preserving the
// roster enumeration order. Exactly one Team per Roster comes out.
func buildTeams(rosters []model.Roster, managers map[string]managerInfo) []model.Team {
	teams := make([]model.Team, 0, len(rosters))
	for _, r := range rosters {
		info := managers[r.OwnerID]
		avatar := info.avatar
		if avatar == "" {
			avatar = "none"
		}
		teams = append(teams, model.Team{
			Name:          teamName(r.ID, info.name),
			Avatar:        avatar,
			Wins:          r.Wins,
			Losses:        r.Losses,
			PointsFor:     r.PointsFor,
			PointsAgainst: r.PointsAgainst,
			RosterID:      r.ID,
			OwnerID:       r.OwnerID,
			Streak:        r.Streak,
		})
	}
	return teams
}

// rankTeams orders teams by wins descending then points-for descending
// and assigns dense ranks 1..N. The sort must be stable: two teams with
// identical wins and points-for keep their input order rather than
// being broken by some tertiary key.
func rankTeams(teams []model.Team) []model.Team {
	ranked := slices.Clone(teams)
	slices.SortStableFunc(ranked, func(a, b model.Team) int {
		if a.Wins != b.Wins {
			return b.Wins - a.Wins
		}
		if a.PointsFor > b.PointsFor {
			return -1
		}
		if a.PointsFor < b.PointsFor {
			return 1
		}
		return 0
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
