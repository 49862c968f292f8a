package controller

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/DCal661/league-of-misfits/model"
)

// pairMatchups reconstructs head-to-head pairs from a week's flat score
// rows. Rows sharing a matchup id are opponents; only groups of exactly
// two produce a matchup. Rows without a matchup id (byes) are never
// grouped, and groups of one or three-plus are dropped without failing
// the request. Within a pair the lower roster id is team1, and pairs
// come out ordered by matchup id, so the output is deterministic no
// matter what order the upstream sent the rows in.
func pairMatchups(rows []model.ScoreRow, names map[int]string) []model.Matchup {
	groups := make(map[int][]model.ScoreRow)
	for _, row := range rows {
		if row.MatchupID == 0 {
			continue
		}
		groups[row.MatchupID] = append(groups[row.MatchupID], row)
	}

	ids := make([]int, 0, len(groups))
	for id, group := range groups {
		if len(group) != 2 {
			log.Debug("dropping malformed matchup group", "matchupID", id, "size", len(group))
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)

	result := make([]model.Matchup, 0, len(ids))
	for _, id := range ids {
		a, b := groups[id][0], groups[id][1]
		if b.RosterID < a.RosterID {
			a, b = b, a
		}
		result = append(result, model.Matchup{
			Team1:  teamName(a.RosterID, names[a.RosterID]),
			Score1: a.Points,
			Team2:  teamName(b.RosterID, names[b.RosterID]),
			Score2: b.Points,
		})
	}
	return result
}
