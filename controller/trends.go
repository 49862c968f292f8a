package controller

import "github.com/DCal661/league-of-misfits/model"

// Never look back more than a full regular season.
const maxTrendWeeks = 17

// trendPoint summarizes one week of scores into a high/low/average
// point. Non-positive scores mean "no data" (a bye or an unplayed slot)
// and are filtered out first. A week with no qualifying scores yields
// nil and is omitted from the trend entirely rather than zero-filled.
func trendPoint(week int, points []float64) *model.TrendPoint {
	var sum float64
	n := 0
	p := model.TrendPoint{Week: week}
	for _, v := range points {
		if v <= 0 {
			continue
		}
		if n == 0 || v > p.High {
			p.High = v
		}
		if n == 0 || v < p.Low {
			p.Low = v
		}
		sum += v
		n++
	}
	if n == 0 {
		return nil
	}
	p.Average = sum / float64(n)
	return &p
}

func trendWeekCount(currentWeek int) int {
	if currentWeek > maxTrendWeeks {
		return maxTrendWeeks
	}
	if currentWeek < 1 {
		return 0
	}
	return currentWeek
}
