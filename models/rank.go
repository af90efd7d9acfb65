package models

// RewardTier is a monthly team-investment target that unlocks a one time
// bonus. Tiers are ordered by ascending target.
type RewardTier struct {
	Title       string  `json:"title"`
	Target      float64 `json:"target"`
	Reward      float64 `json:"reward"`
	Description string  `json:"description"`
}

var RewardTiers = []RewardTier{
	{Title: "Achiever", Target: 2000, Reward: 300, Description: "For dedicated team builders."},
	{Title: "Motivator", Target: 5000, Reward: 750, Description: "For strong network leaders."},
	{Title: "Visionary", Target: 10000, Reward: 1550, Description: "For elite platform champions."},
}

// TeamLevel describes the requirements of one of the five referral levels.
type TeamLevel struct {
	Level           int    `json:"level"`
	Title           string `json:"title"`
	InvestmentRange string `json:"investment_range"`
	DirectMembers   int    `json:"direct_members,omitempty"`
	IndirectMembers int    `json:"indirect_members,omitempty"`
}

var TeamLevels = []TeamLevel{
	{Level: 1, Title: "Starter", InvestmentRange: "$35 - $499"},
	{Level: 2, Title: "Builder", InvestmentRange: "$500 - $1499", DirectMembers: 3, IndirectMembers: 5},
	{Level: 3, Title: "Leader", InvestmentRange: "$1500 - $2999", DirectMembers: 5, IndirectMembers: 15},
	{Level: 4, Title: "Pro", InvestmentRange: "$3000 - $4999", DirectMembers: 10, IndirectMembers: 25},
	{Level: 5, Title: "Elite", InvestmentRange: "$5000+", DirectMembers: 20, IndirectMembers: 70},
}

// MaxTeamLevel is the deepest referral level that pays commissions.
const MaxTeamLevel = 5
