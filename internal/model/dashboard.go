package model

// WindowSummary is a time-windowed slice of one kind with its total.
type WindowSummary struct {
	Total        float64       `json:"total"`
	Transactions []Transaction `json:"transactions"`
}

// DashboardSummary is the whole dashboard response. Numeric fields are zero
// and slices are empty, never absent, when the owner has no records.
type DashboardSummary struct {
	TotalBalance       float64       `json:"totalBalance"`
	TotalIncome        float64       `json:"totalIncome"`
	TotalExpenses      float64       `json:"totalExpenses"`
	Last30DaysExpenses WindowSummary `json:"last30DaysExpenses"`
	Last60DaysIncome   WindowSummary `json:"last60DaysIncome"`
	RecentTransactions []Transaction `json:"recentTransactions"`
}
