package model

type AwardKind string

const (
	AwardUnknown   AwardKind = "unknown"
	AwardTopScorer AwardKind = "top-scorer"
	AwardLowScorer AwardKind = "low-scorer"
	AwardBust      AwardKind = "bust"
)

// AwardWinner names the team holding one superlative for a week.
type AwardWinner struct {
	Team   string
	Points float64
	Detail string
}

// WeeklyAwards holds the superlatives for a single week. The bust is a
// restatement of the low scorer with a detail line attached.
type WeeklyAwards struct {
	Week      int
	TopScorer AwardWinner
	LowScorer AwardWinner
	Bust      AwardWinner
}
