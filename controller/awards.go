package controller

import (
	"fmt"

	"github.com/DCal661/league-of-misfits/model"
)

// Awards cover a trailing window of the most recent 3 weeks.
const awardWindowWeeks = 3

// awardWindow returns the first and last week of the trailing window
// ending at currentWeek, clamped so the window never starts below
// week 1.
func awardWindow(currentWeek int) (first, last int) {
	last = currentWeek
	if last < 1 {
		last = 1
	}
	first = last - awardWindowWeeks + 1
	if first < 1 {
		first = 1
	}
	return first, last
}

// weeklyAwards computes one week's superlatives from its score rows.
// The reduction is a stable left-to-right pick: ties go to the earliest
// row, never an arbitrary map-order selection. Weeks with no positive
// scores yield nil. The bust is a restatement of the low scorer with a
// detail line showing how far below the weekly average it landed.
func weeklyAwards(week int, rows []model.ScoreRow, names map[int]string) *model.WeeklyAwards {
	var top, low *model.ScoreRow
	var sum float64
	n := 0
	for i := range rows {
		if rows[i].Points <= 0 {
			continue
		}
		if top == nil || rows[i].Points > top.Points {
			top = &rows[i]
		}
		if low == nil || rows[i].Points < low.Points {
			low = &rows[i]
		}
		sum += rows[i].Points
		n++
	}
	if top == nil || low == nil {
		return nil
	}

	avg := sum / float64(n)
	lowName := teamName(low.RosterID, names[low.RosterID])

	return &model.WeeklyAwards{
		Week: week,
		TopScorer: model.AwardWinner{
			Team:   teamName(top.RosterID, names[top.RosterID]),
			Points: top.Points,
		},
		LowScorer: model.AwardWinner{
			Team:   lowName,
			Points: low.Points,
		},
		Bust: model.AwardWinner{
			Team:   lowName,
			Points: low.Points,
			Detail: fmt.Sprintf("%.1f points below the weekly average", avg-low.Points),
		},
	}
}
