package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/avdeev-m/finance-tracker/internal/model"
	"github.com/avdeev-m/finance-tracker/internal/repository/mocks"
)

func TestTransactions_AddDefaults(t *testing.T) {
	repo := mocks.NewTransactions(t)
	repo.On("Insert", mock.Anything, mock.Anything, model.KindIncome).Return(nil)

	income := &model.Transaction{
		OwnerID: owner,
		Amount:  150,
		Source:  "Freelance",
	}
	err := NewTransactions(repo).Add(context.Background(), income, model.KindIncome)
	require.NoError(t, err)
	require.False(t, income.Date.IsZero())
	require.Equal(t, model.DefaultIncomeIcon, income.Icon)
}

func TestTransactions_AddKeepsSuppliedFields(t *testing.T) {
	repo := mocks.NewTransactions(t)
	repo.On("Insert", mock.Anything, mock.Anything, model.KindExpense).Return(nil)

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	expense := &model.Transaction{
		OwnerID:  owner,
		Amount:   19.99,
		Category: "Transport",
		Icon:     "🚌",
		Date:     date,
	}
	err := NewTransactions(repo).Add(context.Background(), expense, model.KindExpense)
	require.NoError(t, err)
	require.Equal(t, date, expense.Date)
	require.Equal(t, "🚌", expense.Icon)
}

func TestTransactions_AddValidation(t *testing.T) {
	repo := mocks.NewTransactions(t)
	svc := NewTransactions(repo)

	err := svc.Add(context.Background(), &model.Transaction{OwnerID: owner, Amount: 10, Category: "Groceries"}, model.KindExpense)
	require.ErrorIs(t, err, UnknownCategoryErr)

	err = svc.Add(context.Background(), &model.Transaction{OwnerID: owner, Source: "Salary"}, model.KindIncome)
	require.ErrorIs(t, err, InvalidAmountErr)

	err = svc.Add(context.Background(), &model.Transaction{OwnerID: owner, Amount: 10}, model.KindIncome)
	require.ErrorIs(t, err, MissingSourceErr)

	err = svc.Add(context.Background(), &model.Transaction{Amount: 10, Source: "Salary"}, model.KindIncome)
	require.ErrorIs(t, err, InvalidOwnerErr)

	repo.AssertNotCalled(t, "Insert")
}

func TestTransactions_DeleteNotFound(t *testing.T) {
	id := primitive.NewObjectID()
	repo := mocks.NewTransactions(t)
	repo.On("DeleteByID", mock.Anything, owner, model.KindExpense, id).Return(false, nil)

	err := NewTransactions(repo).Delete(context.Background(), owner, model.KindExpense, id)
	require.ErrorIs(t, err, NotFoundErr)
}

func TestTransactions_Delete(t *testing.T) {
	id := primitive.NewObjectID()
	repo := mocks.NewTransactions(t)
	repo.On("DeleteByID", mock.Anything, owner, model.KindIncome, id).Return(true, nil)

	err := NewTransactions(repo).Delete(context.Background(), owner, model.KindIncome, id)
	require.NoError(t, err)
}
