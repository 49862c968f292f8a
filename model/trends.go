package model

// TrendPoint summarizes one week of league scoring. Weeks where nobody
// posted a positive score get no point at all.
type TrendPoint struct {
	Week    int     `json:"week"`
	High    float64 `json:"high"`
	Low     float64 `json:"low"`
	Average float64 `json:"average"`
}
