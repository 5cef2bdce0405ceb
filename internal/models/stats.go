package models

// PointsPerCompletedExchange is the community-point reward for each
// completed exchange.
const PointsPerCompletedExchange = 10

// Badge is a reputation tier derived from community points.
type Badge string

const (
	BadgeGold     Badge = "Gold"
	BadgeSilver   Badge = "Silver"
	BadgeBronze   Badge = "Bronze"
	BadgeNewcomer Badge = "Newcomer"
)

// BadgeForPoints maps community points to a badge tier:
// Gold >= 100, Silver >= 50, Bronze >= 10, otherwise Newcomer.
func BadgeForPoints(points int) Badge {
	switch {
	case points >= 100:
		return BadgeGold
	case points >= 50:
		return BadgeSilver
	case points >= 10:
		return BadgeBronze
	default:
		return BadgeNewcomer
	}
}

// CategoryCount is a (category, count) histogram bucket.
type CategoryCount struct {
	Category SkillCategory `json:"category"`
	Count    int64         `json:"count"`
}

// RatingCount is a (rating value, count) histogram bucket.
type RatingCount struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

// MonthlyTrend is the number of exchanges with a given status created
// in a given month ("2006-01").
type MonthlyTrend struct {
	Month  string         `json:"month"`
	Status ExchangeStatus `json:"status"`
	Count  int64          `json:"count"`
}

// UserStats summarizes a user's activity for the dashboard.
type UserStats struct {
	SkillCount         int64           `json:"skill_count"`
	TotalExchanges     int64           `json:"total_exchanges"`
	CompletedExchanges int64           `json:"completed_exchanges"`
	PendingExchanges   int64           `json:"pending_exchanges"`
	SkillsByCategory   []CategoryCount `json:"skills_by_category"`
	CommunityPoints    int             `json:"community_points"`
	Badge              Badge           `json:"badge"`
}

// UserAnalytics holds the derived read-only aggregates for the
// analytics dashboard. Nothing here is cached or incrementally
// maintained; every call recomputes from the base rows.
type UserAnalytics struct {
	Trends              []MonthlyTrend  `json:"trends"`
	SkillsDistribution  []CategoryCount `json:"skills_distribution"`
	RatingsDistribution []RatingCount   `json:"ratings_distribution"`
}
