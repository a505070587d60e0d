package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/avdeev-m/finance-tracker/internal/model"
	"github.com/avdeev-m/finance-tracker/internal/repository/mocks"
)

const owner int64 = 42

func transactionAt(kind model.Kind, amount float64, date time.Time) model.Transaction {
	transaction := model.Transaction{
		ID:      primitive.NewObjectID(),
		OwnerID: owner,
		Amount:  amount,
		Date:    date,
	}
	if kind == model.KindIncome {
		transaction.Source = "Salary"
	} else {
		transaction.Category = "Food"
	}
	return transaction
}

func TestDashboard_SummaryEmptyOwner(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	repo := mocks.NewTransactions(t)
	repo.On("SumByOwner", mock.Anything, owner, model.KindIncome).Return(float64(0), nil)
	repo.On("SumByOwner", mock.Anything, owner, model.KindExpense).Return(float64(0), nil)
	repo.On("ListByOwnerSince", mock.Anything, owner, model.KindIncome, now.Add(-incomeWindow)).Return([]model.Transaction{}, nil)
	repo.On("ListByOwnerSince", mock.Anything, owner, model.KindExpense, now.Add(-expenseWindow)).Return([]model.Transaction{}, nil)
	repo.On("ListRecentByOwner", mock.Anything, owner, model.KindIncome, int64(recentLimit)).Return([]model.Transaction{}, nil)
	repo.On("ListRecentByOwner", mock.Anything, owner, model.KindExpense, int64(recentLimit)).Return([]model.Transaction{}, nil)

	summary, err := NewDashboard(repo).Summary(context.Background(), owner, now)
	require.NoError(t, err)
	require.Zero(t, summary.TotalBalance)
	require.Zero(t, summary.TotalIncome)
	require.Zero(t, summary.TotalExpenses)
	require.Zero(t, summary.Last60DaysIncome.Total)
	require.Zero(t, summary.Last30DaysExpenses.Total)
	require.NotNil(t, summary.Last60DaysIncome.Transactions)
	require.Empty(t, summary.Last60DaysIncome.Transactions)
	require.NotNil(t, summary.Last30DaysExpenses.Transactions)
	require.Empty(t, summary.Last30DaysExpenses.Transactions)
	require.NotNil(t, summary.RecentTransactions)
	require.Empty(t, summary.RecentTransactions)
}

func TestDashboard_SummaryTotalsAndWindows(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	incomeDay1 := transactionAt(model.KindIncome, 100, now.Add(-1*24*time.Hour))
	incomeDay70 := transactionAt(model.KindIncome, 200, now.Add(-70*24*time.Hour))
	expenseDay5 := transactionAt(model.KindExpense, 50, now.Add(-5*24*time.Hour))

	repo := mocks.NewTransactions(t)
	repo.On("SumByOwner", mock.Anything, owner, model.KindIncome).Return(float64(300), nil)
	repo.On("SumByOwner", mock.Anything, owner, model.KindExpense).Return(float64(50), nil)
	repo.On("ListByOwnerSince", mock.Anything, owner, model.KindIncome, now.Add(-incomeWindow)).
		Return([]model.Transaction{incomeDay1}, nil)
	repo.On("ListByOwnerSince", mock.Anything, owner, model.KindExpense, now.Add(-expenseWindow)).
		Return([]model.Transaction{expenseDay5}, nil)
	repo.On("ListRecentByOwner", mock.Anything, owner, model.KindIncome, int64(recentLimit)).
		Return([]model.Transaction{incomeDay1, incomeDay70}, nil)
	repo.On("ListRecentByOwner", mock.Anything, owner, model.KindExpense, int64(recentLimit)).
		Return([]model.Transaction{expenseDay5}, nil)

	summary, err := NewDashboard(repo).Summary(context.Background(), owner, now)
	require.NoError(t, err)
	require.Equal(t, float64(300), summary.TotalIncome)
	require.Equal(t, float64(50), summary.TotalExpenses)
	require.Equal(t, float64(250), summary.TotalBalance)
	require.Equal(t, summary.TotalIncome-summary.TotalExpenses, summary.TotalBalance)

	require.Equal(t, float64(100), summary.Last60DaysIncome.Total)
	require.Len(t, summary.Last60DaysIncome.Transactions, 1)
	require.Equal(t, float64(50), summary.Last30DaysExpenses.Total)
	require.Len(t, summary.Last30DaysExpenses.Transactions, 1)

	require.Len(t, summary.RecentTransactions, 3)
	require.Equal(t, model.KindIncome, summary.RecentTransactions[0].Kind)
	require.Equal(t, model.KindExpense, summary.RecentTransactions[1].Kind)
	require.Equal(t, model.KindIncome, summary.RecentTransactions[2].Kind)
}

func TestDashboard_SummaryRecentMerge(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	// 6 records of each kind exist; the store returns only the top 5.
	var incomes, expenses []model.Transaction
	for i := 0; i < recentLimit; i++ {
		incomes = append(incomes, transactionAt(model.KindIncome, 10, now.Add(-time.Duration(2*i+1)*time.Hour)))
		expenses = append(expenses, transactionAt(model.KindExpense, 5, now.Add(-time.Duration(2*i+2)*time.Hour)))
	}

	repo := mocks.NewTransactions(t)
	repo.On("SumByOwner", mock.Anything, owner, mock.Anything).Return(float64(0), nil)
	repo.On("ListByOwnerSince", mock.Anything, owner, mock.Anything, mock.Anything).Return([]model.Transaction{}, nil)
	repo.On("ListRecentByOwner", mock.Anything, owner, model.KindIncome, int64(recentLimit)).Return(incomes, nil)
	repo.On("ListRecentByOwner", mock.Anything, owner, model.KindExpense, int64(recentLimit)).Return(expenses, nil)

	summary, err := NewDashboard(repo).Summary(context.Background(), owner, now)
	require.NoError(t, err)
	require.Len(t, summary.RecentTransactions, 10)
	for i := 1; i < len(summary.RecentTransactions); i++ {
		require.False(t, summary.RecentTransactions[i].Date.After(summary.RecentTransactions[i-1].Date),
			"recent transactions must be sorted non-increasing by date")
	}
	for _, transaction := range summary.RecentTransactions {
		require.Contains(t, []model.Kind{model.KindIncome, model.KindExpense}, transaction.Kind)
	}
}

func TestDashboard_SummaryInvalidOwner(t *testing.T) {
	repo := mocks.NewTransactions(t)

	_, err := NewDashboard(repo).Summary(context.Background(), 0, time.Now().UTC())
	require.ErrorIs(t, err, InvalidOwnerErr)
	repo.AssertNotCalled(t, "SumByOwner")
}

func TestDashboard_SummaryStoreFailure(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := mocks.NewTransactions(t)
	repo.On("SumByOwner", mock.Anything, owner, model.KindIncome).Return(float64(0), storeErr)

	summary, err := NewDashboard(repo).Summary(context.Background(), owner, time.Now().UTC())
	require.ErrorIs(t, err, storeErr)
	require.Nil(t, summary)
}
