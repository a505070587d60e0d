package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/avdeev-m/finance-tracker/internal/model"
	"github.com/avdeev-m/finance-tracker/internal/repository"
)

var InvalidOwnerErr = errors.New("invalid owner id")

const (
	incomeWindow  = 60 * 24 * time.Hour
	expenseWindow = 30 * 24 * time.Hour
	recentLimit   = 5
)

type Dashboard struct {
	repo repository.Transactions
}

func NewDashboard(repo repository.Transactions) *Dashboard {
	return &Dashboard{
		repo: repo,
	}
}

// Summary builds the whole dashboard view for one owner. The queries are
// independent reads, so values may reflect slightly different points in time
// under concurrent writes. Any failed query fails the whole summary.
func (d *Dashboard) Summary(ctx context.Context, ownerID int64, now time.Time) (*model.DashboardSummary, error) {
	if ownerID <= 0 {
		return nil, InvalidOwnerErr
	}

	totalIncome, err := d.repo.SumByOwner(ctx, ownerID, model.KindIncome)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := d.repo.SumByOwner(ctx, ownerID, model.KindExpense)
	if err != nil {
		return nil, err
	}

	last60DaysIncome, err := d.repo.ListByOwnerSince(ctx, ownerID, model.KindIncome, now.Add(-incomeWindow))
	if err != nil {
		return nil, err
	}
	last30DaysExpenses, err := d.repo.ListByOwnerSince(ctx, ownerID, model.KindExpense, now.Add(-expenseWindow))
	if err != nil {
		return nil, err
	}

	recent, err := d.recentTransactions(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &model.DashboardSummary{
		TotalBalance:  totalIncome - totalExpenses,
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Last30DaysExpenses: model.WindowSummary{
			Total:        sumAmounts(last30DaysExpenses),
			Transactions: nonNil(last30DaysExpenses),
		},
		Last60DaysIncome: model.WindowSummary{
			Total:        sumAmounts(last60DaysIncome),
			Transactions: nonNil(last60DaysIncome),
		},
		RecentTransactions: recent,
	}, nil
}

// recentTransactions merges the 5 most recent records of each kind into one
// date-descending sequence. Relative order of records with equal dates is
// not part of the contract.
func (d *Dashboard) recentTransactions(ctx context.Context, ownerID int64) ([]model.Transaction, error) {
	incomes, err := d.repo.ListRecentByOwner(ctx, ownerID, model.KindIncome, recentLimit)
	if err != nil {
		return nil, err
	}
	expenses, err := d.repo.ListRecentByOwner(ctx, ownerID, model.KindExpense, recentLimit)
	if err != nil {
		return nil, err
	}

	merged := make([]model.Transaction, 0, len(incomes)+len(expenses))
	for _, transaction := range incomes {
		transaction.Kind = model.KindIncome
		merged = append(merged, transaction)
	}
	for _, transaction := range expenses {
		transaction.Kind = model.KindExpense
		merged = append(merged, transaction)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})
	return merged, nil
}

// nonNil keeps empty transaction lists rendering as [] rather than null.
func nonNil(transactions []model.Transaction) []model.Transaction {
	if transactions == nil {
		return []model.Transaction{}
	}
	return transactions
}

func sumAmounts(transactions []model.Transaction) float64 {
	var total float64
	for _, transaction := range transactions {
		total += transaction.Amount
	}
	return total
}
