package controller

import (
	"fmt"

	"github.com/DCal661/league-of-misfits/model"
)

type managerInfo struct {
	name   string
	avatar string
}

// resolveManagers maps each owner id to a display name and avatar.
// Resolution always succeeds: a user with no display name or username
// becomes "Unknown", a missing avatar becomes "none".
func resolveManagers(users []model.User) map[string]managerInfo {
	result := make(map[string]managerInfo, len(users))
	for _, u := range users {
		info := managerInfo{
			name:   u.DisplayName,
			avatar: u.Avatar,
		}
		if info.name == "" {
			info.name = u.Username
		}
		if info.name == "" {
			info.name = "Unknown"
		}
		if info.avatar == "" {
			info.avatar = "none"
		}
		result[u.ID] = info
	}
	return result
}

// resolveTeamNames maps each roster id to its owner's resolved name,
// synthesizing a "Team {id}" label when the owner can't be found.
func resolveTeamNames(rosters []model.Roster, managers map[string]managerInfo) map[int]string {
	result := make(map[int]string, len(rosters))
	for _, r := range rosters {
		result[r.ID] = teamName(r.ID, managers[r.OwnerID].name)
	}
	return result
}

func teamName(rosterID int, resolved string) string {
	if resolved == "" {
		return fmt.Sprintf("Team %d", rosterID)
	}
	return resolved
}
