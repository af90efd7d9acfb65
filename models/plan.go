package models

// InvestmentPlan is a fixed catalog entry; plans are not stored in the
// database and cannot be edited at runtime.
type InvestmentPlan struct {
	Name          string  `json:"name"`
	Investment    float64 `json:"investment"`
	DailyProfit   float64 `json:"daily_profit"`
	MonthlyProfit float64 `json:"monthly_profit"`
}

var InvestmentPlans = []InvestmentPlan{
	{Name: "Crypto Forge", Investment: 35, DailyProfit: 0.70, MonthlyProfit: 21.00},
	{Name: "Crypto Forge", Investment: 50, DailyProfit: 1.00, MonthlyProfit: 30.00},
	{Name: "Hash Power", Investment: 100, DailyProfit: 2.00, MonthlyProfit: 60.00},
	{Name: "Hash Power", Investment: 150, DailyProfit: 3.00, MonthlyProfit: 90.00},
	{Name: "Block Pulse", Investment: 200, DailyProfit: 4.00, MonthlyProfit: 120.00},
	{Name: "Core Miner", Investment: 500, DailyProfit: 10.00, MonthlyProfit: 300.00},
	{Name: "Quantum Rig", Investment: 1000, DailyProfit: 20.00, MonthlyProfit: 600.00},
	{Name: "Titan Rig", Investment: 5000, DailyProfit: 100.00, MonthlyProfit: 3000.00},
}
