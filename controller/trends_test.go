package controller

import (
	"reflect"
	"testing"

	"github.com/DCal661/league-of-misfits/model"
)

func TestTrendPoint(t *testing.T) {
	tests := map[string]struct {
		points   []float64
		expected *model.TrendPoint
	}{
		"simple": {
			points:   []float64{10, 20, 30},
			expected: &model.TrendPoint{Week: 4, High: 30, Low: 10, Average: 20},
		},
		"single score": {
			points:   []float64{98.5},
			expected: &model.TrendPoint{Week: 4, High: 98.5, Low: 98.5, Average: 98.5},
		},
		"zeros filtered out": {
			points:   []float64{0, 112.34, 0, 98.5},
			expected: &model.TrendPoint{Week: 4, High: 112.34, Low: 98.5, Average: (112.34 + 98.5) / 2},
		},
		"negatives filtered out": {
			points:   []float64{-5, 50},
			expected: &model.TrendPoint{Week: 4, High: 50, Low: 50, Average: 50},
		},
		"no qualifying scores": {
			points:   []float64{0, 0, 0},
			expected: nil,
		},
		"empty week": {
			points:   nil,
			expected: nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := trendPoint(4, tc.points)
			if !reflect.DeepEqual(tc.expected, got) {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestTrendWeekCount(t *testing.T) {
	tests := map[string]struct {
		currentWeek int
		expected    int
	}{
		"mid-season":         {currentWeek: 7, expected: 7},
		"week one":           {currentWeek: 1, expected: 1},
		"pre-season":         {currentWeek: 0, expected: 0},
		"capped at a season": {currentWeek: 22, expected: 17},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := trendWeekCount(tc.currentWeek); got != tc.expected {
				t.Errorf("expected %d, got %d", tc.expected, got)
			}
		})
	}
}
